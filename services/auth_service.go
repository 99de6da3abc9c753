package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"blogify/models"
	"blogify/repositories"

	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResult, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResult, error)
}

type authService struct {
	userRepo repositories.UserRepository
	creds    CredentialStore
}

func NewAuthService(userRepo repositories.UserRepository, creds CredentialStore) AuthService {
	return &authService{userRepo: userRepo, creds: creds}
}

func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResult, error) {
	email := NormalizeEmail(req.Email)
	username := strings.TrimSpace(req.Username)
	if email == "" || username == "" || req.Password == "" {
		return nil, models.ErrorInvalidInput{Message: models.MsgInvalidBody}
	}

	// Check if user already exists
	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, models.ErrorConflict{Message: models.MsgUserExists}
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, internalError(err)
	}

	// bcrypt limits input by bytes, so multibyte passwords can pass max=72.
	hashedPassword, err := s.creds.HashPassword(req.Password)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, models.ErrorInvalidInput{Message: models.MsgPasswordTooLong}
	}
	if err != nil {
		return nil, internalError(err)
	}

	profilePicture := strings.TrimSpace(req.ProfilePicture)
	if profilePicture == "" {
		profilePicture = models.DefaultProfilePicture
	}

	user := &models.User{
		Email:          email,
		Username:       username,
		Password:       hashedPassword,
		Role:           models.RoleUser,
		Status:         models.StatusActive,
		ProfilePicture: profilePicture,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, models.ErrorConflict{Message: models.MsgUserExists}
		}
		return nil, internalError(err)
	}

	token, err := s.creds.IssueToken(user.Email)
	if err != nil {
		return nil, internalError(err)
	}

	return &models.AuthResult{Token: token, User: *user}, nil
}

// Login reports unknown emails and wrong passwords with the same error.
func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResult, error) {
	email := NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, models.ErrorInvalidInput{Message: models.MsgInvalidBody}
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, models.ErrorUnauthorized{Message: models.MsgInvalidCredentials}
		}
		return nil, internalError(err)
	}

	if !s.creds.VerifyPassword(req.Password, user.Password) {
		return nil, models.ErrorUnauthorized{Message: models.MsgInvalidCredentials}
	}

	token, err := s.creds.IssueToken(user.Email)
	if err != nil {
		return nil, internalError(err)
	}

	return &models.AuthResult{Token: token, User: *user}, nil
}

// NormalizeEmail trims and lower-cases an address so lookups are case
// insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
