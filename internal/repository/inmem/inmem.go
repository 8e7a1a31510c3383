// Package inmem provides in-memory implementations of the repository
// interfaces for tests, mirroring the document-store semantics the mongo
// implementations rely on (projections, uppercased registration numbers,
// verification resets).
package inmem

import (
	"github.com/geekofia/quizdesk/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, repository.ErrInvalidID
	}
	return oid, nil
}
