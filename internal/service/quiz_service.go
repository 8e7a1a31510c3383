package service

import (
	"context"
	"fmt"

	"github.com/geekofia/quizdesk/internal/dto"
	"github.com/geekofia/quizdesk/internal/model"
	"github.com/geekofia/quizdesk/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type QuizService interface {
	CreateQuiz(ctx context.Context, req dto.QuizCreateDTO) (*dto.CreatedResponse, error)
	GetQuiz(ctx context.Context, id string, minified bool) (*dto.QuizResponseDTO, error)
	ListQuizzes(ctx context.Context) ([]dto.QuizSummaryDTO, error)
	ListQuizzesBySemester(ctx context.Context, semester string) ([]dto.QuizSummaryDTO, error)
	ListQuizzesByBranch(ctx context.Context, branch string) ([]dto.QuizSummaryDTO, error)
	ListQuizzesBySemesterAndBranch(ctx context.Context, semester, branch string) ([]dto.QuizSummaryDTO, error)
	ListQuizzesByTitle(ctx context.Context, title string) ([]dto.QuizSummaryDTO, error)
	ListUpcomingQuizzes(ctx context.Context, limit int64) ([]dto.QuizSummaryDTO, error)
	CountQuizzes(ctx context.Context) (int64, error)
	UpdateQuiz(ctx context.Context, id string, req dto.QuizUpdateDTO) (int64, error)
	DeleteQuiz(ctx context.Context, id string) (int64, error)
}

type quizService struct {
	quizRepo    repository.QuizRepository
	studentRepo repository.StudentRepository
	notifier    NotificationService
}

func NewQuizService(quizRepo repository.QuizRepository, studentRepo repository.StudentRepository, notifier NotificationService) QuizService {
	return &quizService{quizRepo: quizRepo, studentRepo: studentRepo, notifier: notifier}
}

func (s *quizService) CreateQuiz(ctx context.Context, req dto.QuizCreateDTO) (*dto.CreatedResponse, error) {
	var quiz model.Quiz
	if err := copier.Copy(&quiz, &req); err != nil {
		return nil, fmt.Errorf("copying quiz create request: %w", err)
	}

	// Questions and options arrive without ids from the admin UI.
	for i := range quiz.Questions {
		if quiz.Questions[i].ID == "" {
			quiz.Questions[i].ID = primitive.NewObjectID().Hex()
		}
		for j := range quiz.Questions[i].Options {
			if quiz.Questions[i].Options[j].ID == "" {
				quiz.Questions[i].Options[j].ID = primitive.NewObjectID().Hex()
			}
		}
	}

	id, err := s.quizRepo.Create(ctx, &quiz)
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create quiz")
		return nil, fmt.Errorf("creating quiz: %w", err)
	}

	if req.Notify {
		s.notifyStudents(ctx, id, &quiz)
	}

	return &dto.CreatedResponse{Message: "Quiz added successfully", ID: id}, nil
}

// notifyStudents emails every verified student of the quiz's branch and
// semester. A mail failure is logged but never fails the create request.
func (s *quizService) notifyStudents(ctx context.Context, id string, quiz *model.Quiz) {
	students, err := s.studentRepo.FindByBranchAndSemester(ctx, quiz.Branch, quiz.Semester, repository.ProjectionMinified)
	if err != nil {
		log.Error().Err(err).Str("quizId", id).Msg("Failed to list students for quiz notification")
		return
	}

	var recipients []string
	for _, st := range students {
		if st.Verification == model.VerificationVerified && st.BioData.Email != "" {
			recipients = append(recipients, st.BioData.Email)
		}
	}
	if len(recipients) == 0 {
		log.Info().Str("quizId", id).Msg("No verified students to notify for quiz")
		return
	}

	notified := *quiz
	notified.ID, _ = primitive.ObjectIDFromHex(id)
	if err := s.notifier.SendQuizNotification(ctx, recipients, &notified); err != nil {
		log.Error().Err(err).Str("quizId", id).Int("recipients", len(recipients)).Msg("Failed to send quiz notification")
		return
	}
	log.Info().Str("quizId", id).Int("recipients", len(recipients)).Msg("Quiz notification sent")
}

func (s *quizService) GetQuiz(ctx context.Context, id string, minified bool) (*dto.QuizResponseDTO, error) {
	proj := repository.ProjectionFull
	if minified {
		proj = repository.ProjectionMinified
	}

	quiz, err := s.quizRepo.FindByID(ctx, id, proj)
	if err != nil {
		return nil, err
	}

	var resp dto.QuizResponseDTO
	if err := copier.Copy(&resp, quiz); err != nil {
		return nil, fmt.Errorf("preparing quiz response: %w", err)
	}
	return &resp, nil
}

func (s *quizService) ListQuizzes(ctx context.Context) ([]dto.QuizSummaryDTO, error) {
	quizzes, err := s.quizRepo.FindAll(ctx, repository.ProjectionMinified)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list quizzes")
		return nil, fmt.Errorf("fetching quizzes: %w", err)
	}
	return toQuizSummaries(quizzes)
}

func (s *quizService) ListQuizzesBySemester(ctx context.Context, semester string) ([]dto.QuizSummaryDTO, error) {
	quizzes, err := s.quizRepo.FindBySemester(ctx, semester)
	if err != nil {
		log.Error().Err(err).Str("semester", semester).Msg("Failed to list quizzes by semester")
		return nil, fmt.Errorf("fetching quizzes by semester: %w", err)
	}
	return toQuizSummaries(quizzes)
}

func (s *quizService) ListQuizzesByBranch(ctx context.Context, branch string) ([]dto.QuizSummaryDTO, error) {
	quizzes, err := s.quizRepo.FindByBranch(ctx, branch)
	if err != nil {
		log.Error().Err(err).Str("branch", branch).Msg("Failed to list quizzes by branch")
		return nil, fmt.Errorf("fetching quizzes by branch: %w", err)
	}
	return toQuizSummaries(quizzes)
}

func (s *quizService) ListQuizzesBySemesterAndBranch(ctx context.Context, semester, branch string) ([]dto.QuizSummaryDTO, error) {
	quizzes, err := s.quizRepo.FindBySemesterAndBranch(ctx, semester, branch)
	if err != nil {
		log.Error().Err(err).Str("semester", semester).Str("branch", branch).Msg("Failed to list quizzes by semester and branch")
		return nil, fmt.Errorf("fetching quizzes by semester and branch: %w", err)
	}
	return toQuizSummaries(quizzes)
}

func (s *quizService) ListQuizzesByTitle(ctx context.Context, title string) ([]dto.QuizSummaryDTO, error) {
	quizzes, err := s.quizRepo.FindByTitle(ctx, title)
	if err != nil {
		log.Error().Err(err).Str("title", title).Msg("Failed to list quizzes by title")
		return nil, fmt.Errorf("fetching quizzes by title: %w", err)
	}
	return toQuizSummaries(quizzes)
}

func (s *quizService) ListUpcomingQuizzes(ctx context.Context, limit int64) ([]dto.QuizSummaryDTO, error) {
	quizzes, err := s.quizRepo.FindUpcoming(ctx, limit)
	if err != nil {
		log.Error().Err(err).Int64("limit", limit).Msg("Failed to list upcoming quizzes")
		return nil, fmt.Errorf("fetching upcoming quizzes: %w", err)
	}
	return toQuizSummaries(quizzes)
}

func (s *quizService) CountQuizzes(ctx context.Context) (int64, error) {
	count, err := s.quizRepo.Count(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to count quizzes")
		return 0, fmt.Errorf("counting quizzes: %w", err)
	}
	return count, nil
}

func (s *quizService) UpdateQuiz(ctx context.Context, id string, req dto.QuizUpdateDTO) (int64, error) {
	var fields model.Quiz
	if err := copier.Copy(&fields, &req); err != nil {
		return 0, fmt.Errorf("copying quiz update request: %w", err)
	}
	return s.quizRepo.Update(ctx, id, &fields)
}

func (s *quizService) DeleteQuiz(ctx context.Context, id string) (int64, error) {
	return s.quizRepo.Delete(ctx, id)
}

func toQuizSummaries(quizzes []model.Quiz) ([]dto.QuizSummaryDTO, error) {
	summaries := make([]dto.QuizSummaryDTO, 0, len(quizzes))
	for _, q := range quizzes {
		summaries = append(summaries, dto.QuizSummaryDTO{
			ID:        q.ID,
			Title:     q.Title,
			Branch:    q.Branch,
			Semester:  q.Semester,
			StartDate: q.StartDate,
			EndDate:   q.EndDate,
		})
	}
	return summaries, nil
}
