package inmem

import (
	"context"
	"sync"

	"github.com/geekofia/quizdesk/internal/model"
	"github.com/geekofia/quizdesk/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository is an in-memory repository.UserRepository.
type UserRepository struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]model.User
}

var _ repository.UserRepository = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[primitive.ObjectID]model.User)}
}

// Seed inserts a user directly; users are created by the auth frontend in
// production, so the repository interface has no Create.
func (r *UserRepository) Seed(user model.User) model.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID] = user
	return user
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) Update(_ context.Context, id string, user *model.User) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[oid]
	if !ok {
		return 0, nil
	}

	modified := int64(0)
	if user.Name != "" && user.Name != existing.Name {
		existing.Name = user.Name
		modified = 1
	}
	if user.Image != "" && user.Image != existing.Image {
		existing.Image = user.Image
		modified = 1
	}
	r.users[oid] = existing
	return modified, nil
}

func (r *UserRepository) Delete(_ context.Context, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[oid]; !ok {
		return 0, nil
	}
	delete(r.users, oid)
	return 1, nil
}
