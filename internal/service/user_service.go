package service

import (
	"context"
	"fmt"

	"github.com/geekofia/quizdesk/internal/dto"
	"github.com/geekofia/quizdesk/internal/model"
	"github.com/geekofia/quizdesk/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type UserService interface {
	GetUser(ctx context.Context, email string) (*dto.UserResponseDTO, error)
	UpdateUser(ctx context.Context, email string, req dto.UserUpdateDTO) (int64, error)
	DeleteUser(ctx context.Context, id string) (int64, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUser(ctx context.Context, email string) (*dto.UserResponseDTO, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	var resp dto.UserResponseDTO
	if err := copier.Copy(&resp, user); err != nil {
		return nil, fmt.Errorf("preparing user response: %w", err)
	}
	return &resp, nil
}

// UpdateUser resolves the user by email first, then merges the updatable
// fields keyed by the resolved id.
func (s *userService) UpdateUser(ctx context.Context, email string, req dto.UserUpdateDTO) (int64, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return 0, err
	}

	fields := model.User{Name: req.Name, Image: req.Image}
	count, err := s.userRepo.Update(ctx, user.ID.Hex(), &fields)
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("Failed to update user")
		return 0, fmt.Errorf("updating user: %w", err)
	}
	return count, nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) (int64, error) {
	return s.userRepo.Delete(ctx, id)
}
