package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OptionDTO struct {
	ID        string `json:"_id"`
	Label     string `json:"label" binding:"required"`
	Value     string `json:"value" binding:"required"`
	IsCorrect bool   `json:"isCorrect"`
}

type QuestionDTO struct {
	ID      string      `json:"_id"`
	Label   string      `json:"label" binding:"required"`
	Options []OptionDTO `json:"options" binding:"required,min=2,dive"`
	Answer  string      `json:"answer" binding:"required"`
}

// QuizCreateDTO is the request body for creating a quiz. Only the title is
// mandatory; a quiz may be created empty and filled in later.
type QuizCreateDTO struct {
	Title       string        `json:"title" binding:"required"`
	Description string        `json:"description"`
	Branch      string        `json:"branch"`
	Semester    string        `json:"semester"`
	StartDate   time.Time     `json:"startDate"`
	EndDate     time.Time     `json:"endDate"`
	Questions   []QuestionDTO `json:"questions" binding:"omitempty,dive"`
	// Notify triggers an email to verified students of the quiz's
	// branch and semester after creation.
	Notify bool `json:"notify"`
}

// QuizUpdateDTO carries a partial field merge. Zero-valued fields are left
// untouched; the id comes from the path and is immutable.
type QuizUpdateDTO struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Branch      string        `json:"branch"`
	Semester    string        `json:"semester"`
	StartDate   time.Time     `json:"startDate"`
	EndDate     time.Time     `json:"endDate"`
	Questions   []QuestionDTO `json:"questions" binding:"omitempty,dive"`
}

type QuizResponseDTO struct {
	ID          primitive.ObjectID `json:"_id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Branch      string             `json:"branch"`
	Semester    string             `json:"semester"`
	StartDate   time.Time          `json:"startDate"`
	EndDate     time.Time          `json:"endDate"`
	Questions   []QuestionDTO      `json:"questions,omitempty"`
}

// QuizSummaryDTO is the minified shape used by list views: no description,
// no questions.
type QuizSummaryDTO struct {
	ID        primitive.ObjectID `json:"_id"`
	Title     string             `json:"title"`
	Branch    string             `json:"branch"`
	Semester  string             `json:"semester"`
	StartDate time.Time          `json:"startDate"`
	EndDate   time.Time          `json:"endDate"`
}
