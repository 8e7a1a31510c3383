package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sentinel errors shared by all repositories. Callers can tell an empty
// result from a failed operation by checking these with errors.Is.
var (
	ErrNotFound  = errors.New("document not found")
	ErrInvalidID = errors.New("invalid object id")
)

// Projection selects which shape of a document a query returns. It replaces
// free-form projection documents so callers cannot push arbitrary shapes
// into the driver.
type Projection int

const (
	// ProjectionFull returns the whole document.
	ProjectionFull Projection = iota
	// ProjectionMinified drops heavy fields: quiz questions/description,
	// submission answers, student marks and contact details.
	ProjectionMinified
)

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}
