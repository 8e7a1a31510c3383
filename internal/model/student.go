package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VerificationStatus is the admin-controlled state of a student record.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// Valid reports whether s is one of the three legal statuses.
func (s VerificationStatus) Valid() bool {
	switch s {
	case VerificationPending, VerificationVerified, VerificationRejected:
		return true
	}
	return false
}

// BioData is the self-reported identity and contact sub-record of a student.
type BioData struct {
	Name       string `bson:"name" json:"name"`
	Email      string `bson:"email" json:"email"`
	Photo      string `bson:"photo,omitempty" json:"photo,omitempty"`
	FatherName string `bson:"fatherName" json:"fatherName"`
	Branch     string `bson:"branch" json:"branch"`
	Semester   string `bson:"semester" json:"semester"`
	RegdNo     string `bson:"regdNo" json:"regdNo"`
	Gender     string `bson:"gender" json:"gender"`
	DOB        string `bson:"dob" json:"dob"`
	Caste      string `bson:"caste" json:"caste"`
	Mob        string `bson:"mob" json:"mob"`
	FatherMob  string `bson:"fatherMob" json:"fatherMob"`
}

type Student struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BioData      BioData            `bson:"bioData" json:"bioData"`
	Verification VerificationStatus `bson:"verification" json:"verification"`
	Marks        []float64          `bson:"marks,omitempty" json:"marks,omitempty"`
}
