package inmem

import (
	"context"
	"sort"
	"sync"

	"github.com/geekofia/quizdesk/internal/model"
	"github.com/geekofia/quizdesk/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubmissionRepository is an in-memory repository.SubmissionRepository.
type SubmissionRepository struct {
	mu          sync.RWMutex
	submissions map[primitive.ObjectID]model.Submission
}

var _ repository.SubmissionRepository = (*SubmissionRepository)(nil)

func NewSubmissionRepository() *SubmissionRepository {
	return &SubmissionRepository{submissions: make(map[primitive.ObjectID]model.Submission)}
}

func minifySubmission(s model.Submission) model.Submission {
	s.Answers = nil
	return s
}

func (r *SubmissionRepository) Create(_ context.Context, submission *model.Submission) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if submission.ID.IsZero() {
		submission.ID = primitive.NewObjectID()
	}
	r.submissions[submission.ID] = *submission
	return submission.ID.Hex(), nil
}

func (r *SubmissionRepository) FindByID(_ context.Context, id string) (*model.Submission, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	submission, ok := r.submissions[oid]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &submission, nil
}

func (r *SubmissionRepository) FindByQuiz(_ context.Context, quizID string, proj repository.Projection) ([]model.Submission, error) {
	qid, err := parseID(quizID)
	if err != nil {
		return nil, err
	}
	return r.filter(func(s model.Submission) bool { return s.QuizID == qid }, proj), nil
}

func (r *SubmissionRepository) FindByStudent(_ context.Context, studentID string, proj repository.Projection) ([]model.Submission, error) {
	sid, err := parseID(studentID)
	if err != nil {
		return nil, err
	}
	return r.filter(func(s model.Submission) bool { return s.StudentID == sid }, proj), nil
}

func (r *SubmissionRepository) FindByQuizAndStudent(_ context.Context, quizID, studentID string, proj repository.Projection) ([]model.Submission, error) {
	qid, err := parseID(quizID)
	if err != nil {
		return nil, err
	}
	sid, err := parseID(studentID)
	if err != nil {
		return nil, err
	}
	return r.filter(func(s model.Submission) bool {
		return s.QuizID == qid && s.StudentID == sid
	}, proj), nil
}

func (r *SubmissionRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.submissions)), nil
}

func (r *SubmissionRepository) filter(match func(model.Submission) bool, proj repository.Projection) []model.Submission {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var submissions []model.Submission
	for _, s := range r.submissions {
		if !match(s) {
			continue
		}
		if proj == repository.ProjectionMinified {
			s = minifySubmission(s)
		}
		submissions = append(submissions, s)
	}
	sort.Slice(submissions, func(i, j int) bool {
		return submissions[i].SubmittedAt.After(submissions[j].SubmittedAt)
	})
	return submissions
}
