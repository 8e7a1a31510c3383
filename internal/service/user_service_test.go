package service

import (
	"context"
	"testing"

	"github.com/geekofia/quizdesk/internal/dto"
	"github.com/geekofia/quizdesk/internal/model"
	"github.com/geekofia/quizdesk/internal/repository"
	"github.com/geekofia/quizdesk/internal/repository/inmem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserByEmail(t *testing.T) {
	repo := inmem.NewUserRepository()
	seeded := repo.Seed(model.User{Email: "admin@example.com", Name: "Admin", Image: "https://cdn.example.com/a.png"})
	svc := NewUserService(repo)

	user, err := svc.GetUser(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, user.ID)
	assert.Equal(t, "Admin", user.Name)

	_, err = svc.GetUser(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateUserByEmail(t *testing.T) {
	repo := inmem.NewUserRepository()
	seeded := repo.Seed(model.User{Email: "admin@example.com", Name: "Admin"})
	svc := NewUserService(repo)
	ctx := context.Background()

	modified, err := svc.UpdateUser(ctx, "admin@example.com", dto.UserUpdateDTO{Name: "Administrator"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), modified)

	user, err := svc.GetUser(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Administrator", user.Name)
	assert.Equal(t, seeded.ID, user.ID)

	// Re-applying the same values modifies nothing.
	modified, err = svc.UpdateUser(ctx, "admin@example.com", dto.UserUpdateDTO{Name: "Administrator"})
	require.NoError(t, err)
	assert.Zero(t, modified)

	_, err = svc.UpdateUser(ctx, "nobody@example.com", dto.UserUpdateDTO{Name: "X"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteUserByID(t *testing.T) {
	repo := inmem.NewUserRepository()
	seeded := repo.Seed(model.User{Email: "admin@example.com", Name: "Admin"})
	svc := NewUserService(repo)
	ctx := context.Background()

	deleted, err := svc.DeleteUser(ctx, seeded.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	deleted, err = svc.DeleteUser(ctx, seeded.ID.Hex())
	require.NoError(t, err)
	assert.Zero(t, deleted)

	_, err = svc.DeleteUser(ctx, "bogus")
	assert.ErrorIs(t, err, repository.ErrInvalidID)
}
