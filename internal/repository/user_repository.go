package repository

import (
	"context"
	"errors"

	"github.com/geekofia/quizdesk/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// Update merges name and image into the user document keyed by id.
	// The email is the natural lookup key and is never rewritten here.
	Update(ctx context.Context, id string, user *model.User) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type userRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{col: db.Collection("users")}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, id string, user *model.User) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}

	set := bson.M{}
	if user.Name != "" {
		set["name"] = user.Name
	}
	if user.Image != "" {
		set["image"] = user.Image
	}
	if len(set) == 0 {
		return 0, nil
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *userRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
