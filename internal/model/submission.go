package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission records a student's answers for one quiz. Answers maps a
// question id to the chosen option value.
type Submission struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	QuizID      primitive.ObjectID `bson:"quizId" json:"quizId"`
	StudentID   primitive.ObjectID `bson:"studentId" json:"studentId"`
	Answers     map[string]string  `bson:"answers,omitempty" json:"answers,omitempty"`
	SubmittedAt time.Time          `bson:"submittedAt" json:"submittedAt"`
}
