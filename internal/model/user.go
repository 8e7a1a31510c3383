package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Name          string             `bson:"name,omitempty" json:"name,omitempty"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	EmailVerified *time.Time         `bson:"emailVerified" json:"emailVerified"`
}
