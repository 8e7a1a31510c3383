package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserUpdateDTO is a partial merge; the email path parameter identifies the
// user and cannot be changed through this endpoint.
type UserUpdateDTO struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

type UserResponseDTO struct {
	ID            primitive.ObjectID `json:"_id"`
	Email         string             `json:"email"`
	Name          string             `json:"name,omitempty"`
	Image         string             `json:"image,omitempty"`
	EmailVerified *time.Time         `json:"emailVerified"`
}
