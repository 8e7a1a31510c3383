package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubmissionCreateDTO is the body of a quiz submission. The quiz id comes
// from the path; answers map question ids to the chosen option value.
type SubmissionCreateDTO struct {
	StudentID string            `json:"studentId" binding:"required"`
	Answers   map[string]string `json:"answers" binding:"required,min=1"`
}

type SubmissionResponseDTO struct {
	ID          primitive.ObjectID `json:"_id"`
	QuizID      primitive.ObjectID `json:"quizId"`
	StudentID   primitive.ObjectID `json:"studentId"`
	Answers     map[string]string  `json:"answers,omitempty"`
	SubmittedAt time.Time          `json:"submittedAt"`
}
