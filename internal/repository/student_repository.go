package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/geekofia/quizdesk/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) (string, error)
	FindByID(ctx context.Context, id string) (*model.Student, error)
	FindByEmail(ctx context.Context, email string) (*model.Student, error)
	FindByRegdNo(ctx context.Context, regdNo string) (*model.Student, error)
	FindAll(ctx context.Context, proj Projection) ([]model.Student, error)
	FindByVerification(ctx context.Context, status model.VerificationStatus, proj Projection) ([]model.Student, error)
	FindBySemester(ctx context.Context, semester string, proj Projection) ([]model.Student, error)
	FindByBranch(ctx context.Context, branch string, proj Projection) ([]model.Student, error)
	FindByBranchAndSemester(ctx context.Context, branch, semester string, proj Projection) ([]model.Student, error)
	Count(ctx context.Context) (int64, error)
	CountByVerification(ctx context.Context, status model.VerificationStatus) (int64, error)
	UpdateBioData(ctx context.Context, id string, bioData model.BioData) (int64, error)
	UpdateVerification(ctx context.Context, id string, status model.VerificationStatus) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type studentRepository struct {
	col *mongo.Collection
}

func NewStudentRepository(db *mongo.Database) StudentRepository {
	return &studentRepository{col: db.Collection("students")}
}

// minifiedStudent keeps only what list views need: who the student is and
// whether they are verified.
var minifiedStudent = bson.M{
	"bioData.name":     1,
	"bioData.email":    1,
	"bioData.regdNo":   1,
	"bioData.branch":   1,
	"bioData.semester": 1,
	"verification":     1,
}

func studentFindOptions(proj Projection) *options.FindOptions {
	opts := options.Find()
	if proj == ProjectionMinified {
		opts.SetProjection(minifiedStudent)
	}
	return opts
}

func (r *studentRepository) Create(ctx context.Context, student *model.Student) (string, error) {
	student.BioData.RegdNo = strings.ToUpper(student.BioData.RegdNo)
	res, err := r.col.InsertOne(ctx, student)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *studentRepository) FindByID(ctx context.Context, id string) (*model.Student, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *studentRepository) FindByEmail(ctx context.Context, email string) (*model.Student, error) {
	return r.findOne(ctx, bson.M{"bioData.email": email})
}

func (r *studentRepository) FindByRegdNo(ctx context.Context, regdNo string) (*model.Student, error) {
	return r.findOne(ctx, bson.M{"bioData.regdNo": strings.ToUpper(regdNo)})
}

func (r *studentRepository) FindAll(ctx context.Context, proj Projection) ([]model.Student, error) {
	return r.find(ctx, bson.M{}, proj)
}

func (r *studentRepository) FindByVerification(ctx context.Context, status model.VerificationStatus, proj Projection) ([]model.Student, error) {
	return r.find(ctx, bson.M{"verification": status}, proj)
}

func (r *studentRepository) FindBySemester(ctx context.Context, semester string, proj Projection) ([]model.Student, error) {
	return r.find(ctx, bson.M{"bioData.semester": semester}, proj)
}

func (r *studentRepository) FindByBranch(ctx context.Context, branch string, proj Projection) ([]model.Student, error) {
	return r.find(ctx, bson.M{"bioData.branch": branch}, proj)
}

func (r *studentRepository) FindByBranchAndSemester(ctx context.Context, branch, semester string, proj Projection) ([]model.Student, error) {
	return r.find(ctx, bson.M{"bioData.branch": branch, "bioData.semester": semester}, proj)
}

func (r *studentRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *studentRepository) CountByVerification(ctx context.Context, status model.VerificationStatus) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"verification": status})
}

// UpdateBioData replaces the embedded biodata record. Any biodata edit sends
// the student back through verification, so the status is reset to pending
// in the same update.
func (r *studentRepository) UpdateBioData(ctx context.Context, id string, bioData model.BioData) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}
	bioData.RegdNo = strings.ToUpper(bioData.RegdNo)

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"bioData":      bioData,
		"verification": model.VerificationPending,
	}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *studentRepository) UpdateVerification(ctx context.Context, id string, status model.VerificationStatus) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"verification": status}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *studentRepository) Delete(ctx context.Context, id string) (int64, error) {
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

func (r *studentRepository) findOne(ctx context.Context, filter bson.M) (*model.Student, error) {
	var student model.Student
	if err := r.col.FindOne(ctx, filter).Decode(&student); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) find(ctx context.Context, filter bson.M, proj Projection) ([]model.Student, error) {
	cur, err := r.col.Find(ctx, filter, studentFindOptions(proj))
	if err != nil {
		return nil, err
	}
	var students []model.Student
	if err := cur.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}
