package repository

import (
	"context"
	"errors"

	"github.com/geekofia/quizdesk/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SubmissionRepository interface {
	Create(ctx context.Context, submission *model.Submission) (string, error)
	FindByID(ctx context.Context, id string) (*model.Submission, error)
	FindByQuiz(ctx context.Context, quizID string, proj Projection) ([]model.Submission, error)
	FindByStudent(ctx context.Context, studentID string, proj Projection) ([]model.Submission, error)
	FindByQuizAndStudent(ctx context.Context, quizID, studentID string, proj Projection) ([]model.Submission, error)
	Count(ctx context.Context) (int64, error)
}

type submissionRepository struct {
	col *mongo.Collection
}

func NewSubmissionRepository(db *mongo.Database) SubmissionRepository {
	return &submissionRepository{col: db.Collection("submissions")}
}

// minifiedSubmission keeps the envelope but drops the answer payload.
var minifiedSubmission = bson.M{"answers": 0}

func submissionFindOptions(proj Projection) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	if proj == ProjectionMinified {
		opts.SetProjection(minifiedSubmission)
	}
	return opts
}

func (r *submissionRepository) Create(ctx context.Context, submission *model.Submission) (string, error) {
	res, err := r.col.InsertOne(ctx, submission)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *submissionRepository) FindByID(ctx context.Context, id string) (*model.Submission, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var submission model.Submission
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&submission); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) FindByQuiz(ctx context.Context, quizID string, proj Projection) ([]model.Submission, error) {
	oid, err := parseID(quizID)
	if err != nil {
		return nil, err
	}
	return r.find(ctx, bson.M{"quizId": oid}, proj)
}

func (r *submissionRepository) FindByStudent(ctx context.Context, studentID string, proj Projection) ([]model.Submission, error) {
	oid, err := parseID(studentID)
	if err != nil {
		return nil, err
	}
	return r.find(ctx, bson.M{"studentId": oid}, proj)
}

func (r *submissionRepository) FindByQuizAndStudent(ctx context.Context, quizID, studentID string, proj Projection) ([]model.Submission, error) {
	qid, err := parseID(quizID)
	if err != nil {
		return nil, err
	}
	sid, err := parseID(studentID)
	if err != nil {
		return nil, err
	}
	return r.find(ctx, bson.M{"quizId": qid, "studentId": sid}, proj)
}

func (r *submissionRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *submissionRepository) find(ctx context.Context, filter bson.M, proj Projection) ([]model.Submission, error) {
	cur, err := r.col.Find(ctx, filter, submissionFindOptions(proj))
	if err != nil {
		return nil, err
	}
	var submissions []model.Submission
	if err := cur.All(ctx, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}
