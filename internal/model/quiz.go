package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Option struct {
	ID        string `bson:"_id" json:"_id"`
	Label     string `bson:"label" json:"label"`
	Value     string `bson:"value" json:"value"`
	IsCorrect bool   `bson:"isCorrect" json:"isCorrect"`
}

type Question struct {
	ID      string   `bson:"_id" json:"_id"`
	Label   string   `bson:"label" json:"label"`
	Options []Option `bson:"options" json:"options"`
	// Answer holds the value of the one option that scores the question.
	Answer string `bson:"answer" json:"answer"`
}

type Quiz struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Branch      string             `bson:"branch" json:"branch"`
	Semester    string             `bson:"semester" json:"semester"`
	StartDate   time.Time          `bson:"startDate" json:"startDate"`
	EndDate     time.Time          `bson:"endDate" json:"endDate"`
	Questions   []Question         `bson:"questions,omitempty" json:"questions,omitempty"`
}
