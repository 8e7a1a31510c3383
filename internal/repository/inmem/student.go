package inmem

import (
	"context"
	"strings"
	"sync"

	"github.com/geekofia/quizdesk/internal/model"
	"github.com/geekofia/quizdesk/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StudentRepository is an in-memory repository.StudentRepository.
type StudentRepository struct {
	mu       sync.RWMutex
	students map[primitive.ObjectID]model.Student
}

var _ repository.StudentRepository = (*StudentRepository)(nil)

func NewStudentRepository() *StudentRepository {
	return &StudentRepository{students: make(map[primitive.ObjectID]model.Student)}
}

func minifyStudent(s model.Student) model.Student {
	s.BioData = model.BioData{
		Name:     s.BioData.Name,
		Email:    s.BioData.Email,
		RegdNo:   s.BioData.RegdNo,
		Branch:   s.BioData.Branch,
		Semester: s.BioData.Semester,
	}
	s.Marks = nil
	return s
}

func (r *StudentRepository) Create(_ context.Context, student *model.Student) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if student.ID.IsZero() {
		student.ID = primitive.NewObjectID()
	}
	student.BioData.RegdNo = strings.ToUpper(student.BioData.RegdNo)
	r.students[student.ID] = *student
	return student.ID.Hex(), nil
}

func (r *StudentRepository) FindByID(_ context.Context, id string) (*model.Student, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	student, ok := r.students[oid]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &student, nil
}

func (r *StudentRepository) FindByEmail(_ context.Context, email string) (*model.Student, error) {
	return r.findOne(func(s model.Student) bool { return s.BioData.Email == email })
}

func (r *StudentRepository) FindByRegdNo(_ context.Context, regdNo string) (*model.Student, error) {
	regdNo = strings.ToUpper(regdNo)
	return r.findOne(func(s model.Student) bool { return s.BioData.RegdNo == regdNo })
}

func (r *StudentRepository) FindAll(_ context.Context, proj repository.Projection) ([]model.Student, error) {
	return r.filter(func(model.Student) bool { return true }, proj), nil
}

func (r *StudentRepository) FindByVerification(_ context.Context, status model.VerificationStatus, proj repository.Projection) ([]model.Student, error) {
	return r.filter(func(s model.Student) bool { return s.Verification == status }, proj), nil
}

func (r *StudentRepository) FindBySemester(_ context.Context, semester string, proj repository.Projection) ([]model.Student, error) {
	return r.filter(func(s model.Student) bool { return s.BioData.Semester == semester }, proj), nil
}

func (r *StudentRepository) FindByBranch(_ context.Context, branch string, proj repository.Projection) ([]model.Student, error) {
	return r.filter(func(s model.Student) bool { return s.BioData.Branch == branch }, proj), nil
}

func (r *StudentRepository) FindByBranchAndSemester(_ context.Context, branch, semester string, proj repository.Projection) ([]model.Student, error) {
	return r.filter(func(s model.Student) bool {
		return s.BioData.Branch == branch && s.BioData.Semester == semester
	}, proj), nil
}

func (r *StudentRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.students)), nil
}

func (r *StudentRepository) CountByVerification(_ context.Context, status model.VerificationStatus) (int64, error) {
	return int64(len(r.filter(func(s model.Student) bool { return s.Verification == status }, repository.ProjectionMinified))), nil
}

func (r *StudentRepository) UpdateBioData(_ context.Context, id string, bioData model.BioData) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	student, ok := r.students[oid]
	if !ok {
		return 0, nil
	}
	bioData.RegdNo = strings.ToUpper(bioData.RegdNo)
	student.BioData = bioData
	student.Verification = model.VerificationPending
	r.students[oid] = student
	return 1, nil
}

func (r *StudentRepository) UpdateVerification(_ context.Context, id string, status model.VerificationStatus) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	student, ok := r.students[oid]
	if !ok {
		return 0, nil
	}
	student.Verification = status
	r.students[oid] = student
	return 1, nil
}

func (r *StudentRepository) Delete(_ context.Context, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.students[oid]; !ok {
		return 0, nil
	}
	delete(r.students, oid)
	return 1, nil
}

func (r *StudentRepository) findOne(match func(model.Student) bool) (*model.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.students {
		if match(s) {
			s := s
			return &s, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *StudentRepository) filter(match func(model.Student) bool, proj repository.Projection) []model.Student {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var students []model.Student
	for _, s := range r.students {
		if !match(s) {
			continue
		}
		if proj == repository.ProjectionMinified {
			s = minifyStudent(s)
		}
		students = append(students, s)
	}
	return students
}
