package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shashiranjanraj/donorlink/app/models"
	"github.com/shashiranjanraj/donorlink/app/repositories"
	"github.com/shashiranjanraj/donorlink/pkg/errs"
	"gorm.io/gorm"
)

type UserService struct {
	users *repositories.UserRepository
}

func NewUserService() *UserService {
	return &UserService{users: repositories.NewUserRepository()}
}

func (s *UserService) AllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *UserService) UserByID(ctx context.Context, id uint) (models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, errs.NewNotFoundError(msgUserNotFound)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("find user %d: %w", id, err)
	}
	return user, nil
}

// Donors lists users flagged as donors.
func (s *UserService) Donors(ctx context.Context) ([]models.Participant, error) {
	return s.participants(ctx, repositories.AsDonor)
}

// Recipients lists users flagged as recipients.
func (s *UserService) Recipients(ctx context.Context) ([]models.Participant, error) {
	return s.participants(ctx, repositories.AsRecipient)
}

func (s *UserService) participants(ctx context.Context, role repositories.Role) ([]models.Participant, error) {
	out, err := s.users.Participants(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("list %ss: %w", role, err)
	}
	return out, nil
}
