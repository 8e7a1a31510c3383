package inmem

import (
	"context"
	"sort"
	"sync"

	"github.com/geekofia/quizdesk/internal/model"
	"github.com/geekofia/quizdesk/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuizRepository is an in-memory repository.QuizRepository.
type QuizRepository struct {
	mu      sync.RWMutex
	quizzes map[primitive.ObjectID]model.Quiz
}

var _ repository.QuizRepository = (*QuizRepository)(nil)

func NewQuizRepository() *QuizRepository {
	return &QuizRepository{quizzes: make(map[primitive.ObjectID]model.Quiz)}
}

func minifyQuiz(q model.Quiz) model.Quiz {
	q.Description = ""
	q.Questions = nil
	return q
}

func sortQuizzes(quizzes []model.Quiz) {
	sort.Slice(quizzes, func(i, j int) bool {
		return quizzes[i].StartDate.After(quizzes[j].StartDate)
	})
}

func (r *QuizRepository) Create(_ context.Context, quiz *model.Quiz) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if quiz.ID.IsZero() {
		quiz.ID = primitive.NewObjectID()
	}
	r.quizzes[quiz.ID] = *quiz
	return quiz.ID.Hex(), nil
}

func (r *QuizRepository) FindByID(_ context.Context, id string, proj repository.Projection) (*model.Quiz, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	quiz, ok := r.quizzes[oid]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if proj == repository.ProjectionMinified {
		quiz = minifyQuiz(quiz)
	}
	return &quiz, nil
}

func (r *QuizRepository) FindAll(_ context.Context, proj repository.Projection) ([]model.Quiz, error) {
	return r.filter(func(model.Quiz) bool { return true }, proj), nil
}

func (r *QuizRepository) FindBySemester(_ context.Context, semester string) ([]model.Quiz, error) {
	return r.filter(func(q model.Quiz) bool { return q.Semester == semester }, repository.ProjectionMinified), nil
}

func (r *QuizRepository) FindByBranch(_ context.Context, branch string) ([]model.Quiz, error) {
	return r.filter(func(q model.Quiz) bool { return q.Branch == branch }, repository.ProjectionMinified), nil
}

func (r *QuizRepository) FindBySemesterAndBranch(_ context.Context, semester, branch string) ([]model.Quiz, error) {
	return r.filter(func(q model.Quiz) bool {
		return q.Semester == semester && q.Branch == branch
	}, repository.ProjectionMinified), nil
}

func (r *QuizRepository) FindByTitle(_ context.Context, title string) ([]model.Quiz, error) {
	return r.filter(func(q model.Quiz) bool { return q.Title == title }, repository.ProjectionMinified), nil
}

func (r *QuizRepository) FindUpcoming(_ context.Context, limit int64) ([]model.Quiz, error) {
	quizzes := r.filter(func(model.Quiz) bool { return true }, repository.ProjectionMinified)
	if int64(len(quizzes)) > limit {
		quizzes = quizzes[:limit]
	}
	return quizzes, nil
}

func (r *QuizRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.quizzes)), nil
}

func (r *QuizRepository) Update(_ context.Context, id string, fields *model.Quiz) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	quiz, ok := r.quizzes[oid]
	if !ok {
		return 0, nil
	}

	if fields.Title != "" {
		quiz.Title = fields.Title
	}
	if fields.Description != "" {
		quiz.Description = fields.Description
	}
	if fields.Branch != "" {
		quiz.Branch = fields.Branch
	}
	if fields.Semester != "" {
		quiz.Semester = fields.Semester
	}
	if !fields.StartDate.IsZero() {
		quiz.StartDate = fields.StartDate
	}
	if !fields.EndDate.IsZero() {
		quiz.EndDate = fields.EndDate
	}
	if fields.Questions != nil {
		quiz.Questions = fields.Questions
	}

	r.quizzes[oid] = quiz
	return 1, nil
}

func (r *QuizRepository) Delete(_ context.Context, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.quizzes[oid]; !ok {
		return 0, nil
	}
	delete(r.quizzes, oid)
	return 1, nil
}

func (r *QuizRepository) filter(match func(model.Quiz) bool, proj repository.Projection) []model.Quiz {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var quizzes []model.Quiz
	for _, q := range r.quizzes {
		if !match(q) {
			continue
		}
		if proj == repository.ProjectionMinified {
			q = minifyQuiz(q)
		}
		quizzes = append(quizzes, q)
	}
	sortQuizzes(quizzes)
	return quizzes
}
