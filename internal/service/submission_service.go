package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/geekofia/quizdesk/internal/dto"
	"github.com/geekofia/quizdesk/internal/model"
	"github.com/geekofia/quizdesk/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrAlreadySubmitted signals that the student has a prior submission for
// the quiz. The guard lives here, not in a store-level unique index.
var ErrAlreadySubmitted = errors.New("quiz already submitted by this student")

type SubmissionService interface {
	SubmitQuiz(ctx context.Context, quizID string, req dto.SubmissionCreateDTO) (*dto.CreatedResponse, error)
	GetSubmission(ctx context.Context, id string) (*dto.SubmissionResponseDTO, error)
	ListSubmissionsByQuiz(ctx context.Context, quizID string, minified bool) ([]dto.SubmissionResponseDTO, error)
	ListSubmissionsByStudent(ctx context.Context, studentID string, minified bool) ([]dto.SubmissionResponseDTO, error)
	ListSubmissionsByQuizAndStudent(ctx context.Context, quizID, studentID string) ([]dto.SubmissionResponseDTO, error)
	CountSubmissions(ctx context.Context) (int64, error)
}

type submissionService struct {
	submissionRepo repository.SubmissionRepository
}

func NewSubmissionService(submissionRepo repository.SubmissionRepository) SubmissionService {
	return &submissionService{submissionRepo: submissionRepo}
}

func (s *submissionService) SubmitQuiz(ctx context.Context, quizID string, req dto.SubmissionCreateDTO) (*dto.CreatedResponse, error) {
	prior, err := s.submissionRepo.FindByQuizAndStudent(ctx, quizID, req.StudentID, repository.ProjectionMinified)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return nil, err
		}
		log.Error().Err(err).Str("quizId", quizID).Str("studentId", req.StudentID).Msg("Failed to check prior submissions")
		return nil, fmt.Errorf("checking prior submissions: %w", err)
	}
	if len(prior) > 0 {
		return nil, ErrAlreadySubmitted
	}

	qid, err := primitive.ObjectIDFromHex(quizID)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	sid, err := primitive.ObjectIDFromHex(req.StudentID)
	if err != nil {
		return nil, repository.ErrInvalidID
	}

	submission := model.Submission{
		QuizID:      qid,
		StudentID:   sid,
		Answers:     req.Answers,
		SubmittedAt: time.Now().UTC(),
	}

	id, err := s.submissionRepo.Create(ctx, &submission)
	if err != nil {
		log.Error().Err(err).Str("quizId", quizID).Str("studentId", req.StudentID).Msg("Failed to create submission")
		return nil, fmt.Errorf("creating submission: %w", err)
	}
	return &dto.CreatedResponse{Message: "Quiz submitted successfully", ID: id}, nil
}

func (s *submissionService) GetSubmission(ctx context.Context, id string) (*dto.SubmissionResponseDTO, error) {
	submission, err := s.submissionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var resp dto.SubmissionResponseDTO
	if err := copier.Copy(&resp, submission); err != nil {
		return nil, fmt.Errorf("preparing submission response: %w", err)
	}
	return &resp, nil
}

func (s *submissionService) ListSubmissionsByQuiz(ctx context.Context, quizID string, minified bool) ([]dto.SubmissionResponseDTO, error) {
	submissions, err := s.submissionRepo.FindByQuiz(ctx, quizID, projectionFor(minified))
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return nil, err
		}
		log.Error().Err(err).Str("quizId", quizID).Msg("Failed to list submissions by quiz")
		return nil, fmt.Errorf("fetching submissions by quiz: %w", err)
	}
	return toSubmissionResponses(submissions)
}

func (s *submissionService) ListSubmissionsByStudent(ctx context.Context, studentID string, minified bool) ([]dto.SubmissionResponseDTO, error) {
	submissions, err := s.submissionRepo.FindByStudent(ctx, studentID, projectionFor(minified))
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return nil, err
		}
		log.Error().Err(err).Str("studentId", studentID).Msg("Failed to list submissions by student")
		return nil, fmt.Errorf("fetching submissions by student: %w", err)
	}
	return toSubmissionResponses(submissions)
}

func (s *submissionService) ListSubmissionsByQuizAndStudent(ctx context.Context, quizID, studentID string) ([]dto.SubmissionResponseDTO, error) {
	submissions, err := s.submissionRepo.FindByQuizAndStudent(ctx, quizID, studentID, repository.ProjectionFull)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return nil, err
		}
		log.Error().Err(err).Str("quizId", quizID).Str("studentId", studentID).Msg("Failed to list submissions by quiz and student")
		return nil, fmt.Errorf("fetching submissions by quiz and student: %w", err)
	}
	return toSubmissionResponses(submissions)
}

func (s *submissionService) CountSubmissions(ctx context.Context) (int64, error) {
	count, err := s.submissionRepo.Count(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to count submissions")
		return 0, fmt.Errorf("counting submissions: %w", err)
	}
	return count, nil
}

func projectionFor(minified bool) repository.Projection {
	if minified {
		return repository.ProjectionMinified
	}
	return repository.ProjectionFull
}

func toSubmissionResponses(submissions []model.Submission) ([]dto.SubmissionResponseDTO, error) {
	resps := make([]dto.SubmissionResponseDTO, 0, len(submissions))
	for i := range submissions {
		var resp dto.SubmissionResponseDTO
		if err := copier.Copy(&resp, &submissions[i]); err != nil {
			return nil, fmt.Errorf("preparing submission response: %w", err)
		}
		resps = append(resps, resp)
	}
	return resps, nil
}
