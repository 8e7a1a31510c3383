package service

import (
	"context"
	"testing"
	"time"

	"github.com/geekofia/quizdesk/internal/dto"
	"github.com/geekofia/quizdesk/internal/model"
	"github.com/geekofia/quizdesk/internal/repository"
	"github.com/geekofia/quizdesk/internal/repository/inmem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	recipients []string
	quiz       *model.Quiz
	calls      int
}

func (n *recordingNotifier) SendQuizNotification(_ context.Context, recipients []string, quiz *model.Quiz) error {
	n.recipients = recipients
	n.quiz = quiz
	n.calls++
	return nil
}

func newQuizService(t *testing.T) (QuizService, *inmem.StudentRepository, *recordingNotifier) {
	t.Helper()
	notifier := &recordingNotifier{}
	studentRepo := inmem.NewStudentRepository()
	return NewQuizService(inmem.NewQuizRepository(), studentRepo, notifier), studentRepo, notifier
}

func newQuizCreate(title, branch, semester string, start time.Time) dto.QuizCreateDTO {
	return dto.QuizCreateDTO{
		Title:       title,
		Description: "closed book",
		Branch:      branch,
		Semester:    semester,
		StartDate:   start,
		EndDate:     start.Add(time.Hour),
		Questions: []dto.QuestionDTO{
			{
				Label: "2 + 2 = ?",
				Options: []dto.OptionDTO{
					{Label: "3", Value: "3"},
					{Label: "4", Value: "4", IsCorrect: true},
				},
				Answer: "4",
			},
		},
	}
}

func TestCreateQuizRoundTrip(t *testing.T) {
	svc, _, _ := newQuizService(t)
	ctx := context.Background()

	created, err := svc.CreateQuiz(ctx, newQuizCreate("Midterm", "CSE", "3", time.Now()))
	require.NoError(t, err)
	require.Len(t, created.ID, 24, "store-generated id is a 24-hex identifier")

	quiz, err := svc.GetQuiz(ctx, created.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "Midterm", quiz.Title)
	assert.Equal(t, "closed book", quiz.Description)
	require.Len(t, quiz.Questions, 1)
	assert.NotEmpty(t, quiz.Questions[0].ID, "question ids are generated on insert")
	assert.NotEmpty(t, quiz.Questions[0].Options[0].ID)
	assert.Equal(t, "4", quiz.Questions[0].Answer)
}

func TestGetQuizMinified(t *testing.T) {
	svc, _, _ := newQuizService(t)
	ctx := context.Background()

	created, err := svc.CreateQuiz(ctx, newQuizCreate("Midterm", "CSE", "3", time.Now()))
	require.NoError(t, err)

	quiz, err := svc.GetQuiz(ctx, created.ID, true)
	require.NoError(t, err)
	assert.Equal(t, "Midterm", quiz.Title)
	assert.Empty(t, quiz.Description, "minified projection omits description")
	assert.Empty(t, quiz.Questions, "minified projection omits questions")
}

func TestGetQuizNotFound(t *testing.T) {
	svc, _, _ := newQuizService(t)

	_, err := svc.GetQuiz(context.Background(), "64a1f0c2e1b2c3d4e5f60718", false)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.GetQuiz(context.Background(), "not-a-hex-id", false)
	assert.ErrorIs(t, err, repository.ErrInvalidID)
}

func TestListQuizzesBySemesterAndBranchExactMatch(t *testing.T) {
	svc, _, _ := newQuizService(t)
	ctx := context.Background()
	now := time.Now()

	_, err := svc.CreateQuiz(ctx, newQuizCreate("CSE 3rd sem", "CSE", "3", now))
	require.NoError(t, err)
	_, err = svc.CreateQuiz(ctx, newQuizCreate("CSE 5th sem", "CSE", "5", now))
	require.NoError(t, err)
	_, err = svc.CreateQuiz(ctx, newQuizCreate("ECE 3rd sem", "ECE", "3", now))
	require.NoError(t, err)

	quizzes, err := svc.ListQuizzesBySemesterAndBranch(ctx, "3", "CSE")
	require.NoError(t, err)
	require.Len(t, quizzes, 1, "both filters must match, no partial match")
	assert.Equal(t, "CSE 3rd sem", quizzes[0].Title)
}

func TestListQuizzesSortedByRecency(t *testing.T) {
	svc, _, _ := newQuizService(t)
	ctx := context.Background()
	now := time.Now()

	_, err := svc.CreateQuiz(ctx, newQuizCreate("old", "CSE", "3", now.Add(-48*time.Hour)))
	require.NoError(t, err)
	_, err = svc.CreateQuiz(ctx, newQuizCreate("new", "CSE", "3", now))
	require.NoError(t, err)
	_, err = svc.CreateQuiz(ctx, newQuizCreate("middle", "CSE", "3", now.Add(-24*time.Hour)))
	require.NoError(t, err)

	quizzes, err := svc.ListQuizzes(ctx)
	require.NoError(t, err)
	require.Len(t, quizzes, 3)
	assert.Equal(t, []string{"new", "middle", "old"},
		[]string{quizzes[0].Title, quizzes[1].Title, quizzes[2].Title})

	upcoming, err := svc.ListUpcomingQuizzes(ctx, 2)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "new", upcoming[0].Title)
}

func TestUpdateQuizPartialMerge(t *testing.T) {
	svc, _, _ := newQuizService(t)
	ctx := context.Background()

	created, err := svc.CreateQuiz(ctx, newQuizCreate("Midterm", "CSE", "3", time.Now()))
	require.NoError(t, err)

	modified, err := svc.UpdateQuiz(ctx, created.ID, dto.QuizUpdateDTO{Title: "Midterm (rescheduled)"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), modified)

	quiz, err := svc.GetQuiz(ctx, created.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "Midterm (rescheduled)", quiz.Title)
	assert.Equal(t, "closed book", quiz.Description, "unset fields are left untouched")
	assert.Len(t, quiz.Questions, 1)

	// An empty merge still matches the document.
	modified, err = svc.UpdateQuiz(ctx, created.ID, dto.QuizUpdateDTO{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), modified)
}

func TestDeleteQuizUnknownID(t *testing.T) {
	svc, _, _ := newQuizService(t)

	deleted, err := svc.DeleteQuiz(context.Background(), "64a1f0c2e1b2c3d4e5f60718")
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}

func TestCreateQuizNotifiesVerifiedStudentsOnly(t *testing.T) {
	svc, studentRepo, notifier := newQuizService(t)
	ctx := context.Background()

	verified := model.Student{
		BioData:      model.BioData{Name: "A", Email: "a@example.com", Branch: "CSE", Semester: "3", RegdNo: "21CSE001"},
		Verification: model.VerificationVerified,
	}
	pending := model.Student{
		BioData:      model.BioData{Name: "B", Email: "b@example.com", Branch: "CSE", Semester: "3", RegdNo: "21CSE002"},
		Verification: model.VerificationPending,
	}
	otherBranch := model.Student{
		BioData:      model.BioData{Name: "C", Email: "c@example.com", Branch: "ECE", Semester: "3", RegdNo: "21ECE001"},
		Verification: model.VerificationVerified,
	}
	for _, st := range []model.Student{verified, pending, otherBranch} {
		st := st
		_, err := studentRepo.Create(ctx, &st)
		require.NoError(t, err)
	}

	req := newQuizCreate("Midterm", "CSE", "3", time.Now())
	req.Notify = true
	created, err := svc.CreateQuiz(ctx, req)
	require.NoError(t, err)

	require.Equal(t, 1, notifier.calls)
	assert.Equal(t, []string{"a@example.com"}, notifier.recipients)
	assert.Equal(t, created.ID, notifier.quiz.ID.Hex())
}

func TestCreateQuizWithoutNotifySkipsNotifier(t *testing.T) {
	svc, _, notifier := newQuizService(t)

	_, err := svc.CreateQuiz(context.Background(), newQuizCreate("Midterm", "CSE", "3", time.Now()))
	require.NoError(t, err)
	assert.Zero(t, notifier.calls)
}

func TestCountQuizzes(t *testing.T) {
	svc, _, _ := newQuizService(t)
	ctx := context.Background()

	count, err := svc.CountQuizzes(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = svc.CreateQuiz(ctx, newQuizCreate("Midterm", "CSE", "3", time.Now()))
	require.NoError(t, err)

	count, err = svc.CountQuizzes(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
