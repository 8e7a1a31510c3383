package service

import (
	"context"
	"testing"

	"github.com/geekofia/quizdesk/internal/dto"
	"github.com/geekofia/quizdesk/internal/repository"
	"github.com/geekofia/quizdesk/internal/repository/inmem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSubmitQuizRoundTrip(t *testing.T) {
	svc := NewSubmissionService(inmem.NewSubmissionRepository())
	ctx := context.Background()
	quizID := primitive.NewObjectID().Hex()
	studentID := primitive.NewObjectID().Hex()

	created, err := svc.SubmitQuiz(ctx, quizID, dto.SubmissionCreateDTO{
		StudentID: studentID,
		Answers:   map[string]string{"q1": "4", "q2": "blue"},
	})
	require.NoError(t, err)
	require.Len(t, created.ID, 24)

	got, err := svc.GetSubmission(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, quizID, got.QuizID.Hex())
	assert.Equal(t, studentID, got.StudentID.Hex())
	assert.Equal(t, map[string]string{"q1": "4", "q2": "blue"}, got.Answers)
	assert.False(t, got.SubmittedAt.IsZero())
}

func TestSubmitQuizRejectsSecondAttempt(t *testing.T) {
	svc := NewSubmissionService(inmem.NewSubmissionRepository())
	ctx := context.Background()
	quizID := primitive.NewObjectID().Hex()
	studentID := primitive.NewObjectID().Hex()

	_, err := svc.SubmitQuiz(ctx, quizID, dto.SubmissionCreateDTO{
		StudentID: studentID,
		Answers:   map[string]string{"q1": "4"},
	})
	require.NoError(t, err)

	_, err = svc.SubmitQuiz(ctx, quizID, dto.SubmissionCreateDTO{
		StudentID: studentID,
		Answers:   map[string]string{"q1": "3"},
	})
	assert.ErrorIs(t, err, ErrAlreadySubmitted)

	// The same student may still submit a different quiz.
	_, err = svc.SubmitQuiz(ctx, primitive.NewObjectID().Hex(), dto.SubmissionCreateDTO{
		StudentID: studentID,
		Answers:   map[string]string{"q1": "4"},
	})
	assert.NoError(t, err)

	count, err := svc.CountSubmissions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestSubmitQuizInvalidIDs(t *testing.T) {
	svc := NewSubmissionService(inmem.NewSubmissionRepository())
	ctx := context.Background()

	_, err := svc.SubmitQuiz(ctx, "not-a-hex-id", dto.SubmissionCreateDTO{
		StudentID: primitive.NewObjectID().Hex(),
		Answers:   map[string]string{"q1": "4"},
	})
	assert.ErrorIs(t, err, repository.ErrInvalidID)

	_, err = svc.SubmitQuiz(ctx, primitive.NewObjectID().Hex(), dto.SubmissionCreateDTO{
		StudentID: "nope",
		Answers:   map[string]string{"q1": "4"},
	})
	assert.ErrorIs(t, err, repository.ErrInvalidID)
}

func TestListSubmissionsByQuizMinified(t *testing.T) {
	svc := NewSubmissionService(inmem.NewSubmissionRepository())
	ctx := context.Background()
	quizID := primitive.NewObjectID().Hex()

	for i := 0; i < 2; i++ {
		_, err := svc.SubmitQuiz(ctx, quizID, dto.SubmissionCreateDTO{
			StudentID: primitive.NewObjectID().Hex(),
			Answers:   map[string]string{"q1": "4"},
		})
		require.NoError(t, err)
	}

	minified, err := svc.ListSubmissionsByQuiz(ctx, quizID, true)
	require.NoError(t, err)
	require.Len(t, minified, 2)
	for _, sub := range minified {
		assert.Nil(t, sub.Answers, "minified projection omits answers")
		assert.False(t, sub.SubmittedAt.IsZero())
	}

	full, err := svc.ListSubmissionsByQuiz(ctx, quizID, false)
	require.NoError(t, err)
	require.Len(t, full, 2)
	assert.NotNil(t, full[0].Answers)
}

func TestListSubmissionsByQuizAndStudent(t *testing.T) {
	svc := NewSubmissionService(inmem.NewSubmissionRepository())
	ctx := context.Background()
	quizID := primitive.NewObjectID().Hex()
	studentID := primitive.NewObjectID().Hex()

	_, err := svc.SubmitQuiz(ctx, quizID, dto.SubmissionCreateDTO{
		StudentID: studentID,
		Answers:   map[string]string{"q1": "4"},
	})
	require.NoError(t, err)
	_, err = svc.SubmitQuiz(ctx, quizID, dto.SubmissionCreateDTO{
		StudentID: primitive.NewObjectID().Hex(),
		Answers:   map[string]string{"q1": "3"},
	})
	require.NoError(t, err)

	subs, err := svc.ListSubmissionsByQuizAndStudent(ctx, quizID, studentID)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, studentID, subs[0].StudentID.Hex())
	assert.Equal(t, map[string]string{"q1": "4"}, subs[0].Answers)

	none, err := svc.ListSubmissionsByQuizAndStudent(ctx, quizID, primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.Empty(t, none)
}
