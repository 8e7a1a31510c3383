package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BioDataDTO struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Photo      string `json:"photo"`
	FatherName string `json:"fatherName" binding:"required"`
	Branch     string `json:"branch" binding:"required"`
	Semester   string `json:"semester" binding:"required"`
	RegdNo     string `json:"regdNo" binding:"required,regdno"`
	Gender     string `json:"gender" binding:"required"`
	DOB        string `json:"dob" binding:"required"`
	Caste      string `json:"caste"`
	Mob        string `json:"mob" binding:"required"`
	FatherMob  string `json:"fatherMob"`
}

// StudentCreateDTO registers a new student. Every new record starts out
// pending verification.
type StudentCreateDTO struct {
	BioData BioDataDTO `json:"bioData" binding:"required"`
}

// VerificationUpdateDTO sets the admin verification status. Only the three
// legal states pass binding.
type VerificationUpdateDTO struct {
	Status string `json:"status" binding:"required,oneof=pending verified rejected"`
}

type StudentResponseDTO struct {
	ID           primitive.ObjectID `json:"_id"`
	BioData      BioDataResponseDTO `json:"bioData"`
	Verification string             `json:"verification"`
	Marks        []float64          `json:"marks,omitempty"`
}

// BioDataResponseDTO mirrors BioDataDTO without binding so partial
// (minified) projections serialize cleanly.
type BioDataResponseDTO struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Photo      string `json:"photo,omitempty"`
	FatherName string `json:"fatherName,omitempty"`
	Branch     string `json:"branch,omitempty"`
	Semester   string `json:"semester,omitempty"`
	RegdNo     string `json:"regdNo"`
	Gender     string `json:"gender,omitempty"`
	DOB        string `json:"dob,omitempty"`
	Caste      string `json:"caste,omitempty"`
	Mob        string `json:"mob,omitempty"`
	FatherMob  string `json:"fatherMob,omitempty"`
}
