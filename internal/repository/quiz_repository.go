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

type QuizRepository interface {
	Create(ctx context.Context, quiz *model.Quiz) (string, error)
	FindByID(ctx context.Context, id string, proj Projection) (*model.Quiz, error)
	FindAll(ctx context.Context, proj Projection) ([]model.Quiz, error)
	FindBySemester(ctx context.Context, semester string) ([]model.Quiz, error)
	FindByBranch(ctx context.Context, branch string) ([]model.Quiz, error)
	FindBySemesterAndBranch(ctx context.Context, semester, branch string) ([]model.Quiz, error)
	FindByTitle(ctx context.Context, title string) ([]model.Quiz, error)
	FindUpcoming(ctx context.Context, limit int64) ([]model.Quiz, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id string, fields *model.Quiz) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type quizRepository struct {
	col *mongo.Collection
}

func NewQuizRepository(db *mongo.Database) QuizRepository {
	return &quizRepository{col: db.Collection("quizzes")}
}

// minifiedQuiz drops the heavy fields from list views.
var minifiedQuiz = bson.M{"description": 0, "questions": 0}

func quizFindOptions(proj Projection) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: "startDate", Value: -1}})
	if proj == ProjectionMinified {
		opts.SetProjection(minifiedQuiz)
	}
	return opts
}

func (r *quizRepository) Create(ctx context.Context, quiz *model.Quiz) (string, error) {
	res, err := r.col.InsertOne(ctx, quiz)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *quizRepository) FindByID(ctx context.Context, id string, proj Projection) (*model.Quiz, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	opts := options.FindOne()
	if proj == ProjectionMinified {
		opts.SetProjection(minifiedQuiz)
	}

	var quiz model.Quiz
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}, opts).Decode(&quiz); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindAll(ctx context.Context, proj Projection) ([]model.Quiz, error) {
	return r.find(ctx, bson.M{}, quizFindOptions(proj))
}

func (r *quizRepository) FindBySemester(ctx context.Context, semester string) ([]model.Quiz, error) {
	return r.find(ctx, bson.M{"semester": semester}, quizFindOptions(ProjectionMinified))
}

func (r *quizRepository) FindByBranch(ctx context.Context, branch string) ([]model.Quiz, error) {
	return r.find(ctx, bson.M{"branch": branch}, quizFindOptions(ProjectionMinified))
}

func (r *quizRepository) FindBySemesterAndBranch(ctx context.Context, semester, branch string) ([]model.Quiz, error) {
	return r.find(ctx, bson.M{"semester": semester, "branch": branch}, quizFindOptions(ProjectionMinified))
}

func (r *quizRepository) FindByTitle(ctx context.Context, title string) ([]model.Quiz, error) {
	return r.find(ctx, bson.M{"title": title}, quizFindOptions(ProjectionMinified))
}

func (r *quizRepository) FindUpcoming(ctx context.Context, limit int64) ([]model.Quiz, error) {
	opts := quizFindOptions(ProjectionMinified).SetLimit(limit)
	return r.find(ctx, bson.M{}, opts)
}

func (r *quizRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

// Update applies a partial $set built from the non-zero fields of the given
// quiz. The _id is never part of the update document.
func (r *quizRepository) Update(ctx context.Context, id string, fields *model.Quiz) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}

	set := bson.M{}
	if fields.Title != "" {
		set["title"] = fields.Title
	}
	if fields.Description != "" {
		set["description"] = fields.Description
	}
	if fields.Branch != "" {
		set["branch"] = fields.Branch
	}
	if fields.Semester != "" {
		set["semester"] = fields.Semester
	}
	if !fields.StartDate.IsZero() {
		set["startDate"] = fields.StartDate
	}
	if !fields.EndDate.IsZero() {
		set["endDate"] = fields.EndDate
	}
	if fields.Questions != nil {
		set["questions"] = fields.Questions
	}
	// An empty merge is a no-op but must still report whether the quiz
	// exists, so callers can tell it apart from an unknown id.
	if len(set) == 0 {
		return r.col.CountDocuments(ctx, bson.M{"_id": oid})
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *quizRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *quizRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]model.Quiz, error) {
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var quizzes []model.Quiz
	if err := cur.All(ctx, &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}
