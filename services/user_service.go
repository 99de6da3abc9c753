package services

import (
	"context"
	"errors"

	"blogify/models"
	"blogify/repositories"
)

type UserService interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	SetStatus(ctx context.Context, id string, status string) error
	DeleteUser(ctx context.Context, id string) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, models.ErrorNotFound{Message: models.MsgUserNotFound}
		}
		return nil, internalError(err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, internalError(err)
	}
	return users, nil
}

// SetStatus is idempotent: setting the current status again succeeds.
func (s *userService) SetStatus(ctx context.Context, id string, status string) error {
	st := models.UserStatus(status)
	if !st.Valid() {
		return models.ErrorInvalidInput{Message: models.MsgInvalidStatus}
	}

	objID, err := repositories.ParseID(id)
	if err != nil {
		return models.ErrorInvalidInput{Message: models.MsgInvalidUserID}
	}

	found, err := s.userRepo.UpdateStatus(ctx, objID, st)
	if err != nil {
		return internalError(err)
	}
	if !found {
		return models.ErrorNotFound{Message: models.MsgAccountNotFound}
	}
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	objID, err := repositories.ParseID(id)
	if err != nil {
		return models.ErrorInvalidInput{Message: models.MsgInvalidUserID}
	}

	deleted, err := s.userRepo.Delete(ctx, objID)
	if err != nil {
		return internalError(err)
	}
	if !deleted {
		return models.ErrorNotFound{Message: models.MsgAccountNotFound}
	}
	return nil
}
