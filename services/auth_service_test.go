package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"blogify/models"
	"blogify/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	req := models.RegisterRequest{Username: " alice ", Email: " Alice@Example.com ", Password: "pw123456"}

	t.Run("success applies defaults and issues a token", func(t *testing.T) {
		repo := new(MockUserRepository)
		creds := newTestCredentialStore()
		svc := NewAuthService(repo, creds)

		repo.On("GetByEmail", ctx, "alice@example.com").Return(nil, repositories.ErrNotFound)
		repo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(nil)

		result, err := svc.Register(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, "alice@example.com", result.User.Email)
		assert.Equal(t, "alice", result.User.Username)
		assert.Equal(t, models.RoleUser, result.User.Role)
		assert.Equal(t, models.StatusActive, result.User.Status)
		assert.Equal(t, models.DefaultProfilePicture, result.User.ProfilePicture)
		assert.NotEqual(t, "pw123456", result.User.Password)
		assert.True(t, creds.VerifyPassword("pw123456", result.User.Password))

		claims, err := creds.VerifyToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", claims.Email)
		repo.AssertExpectations(t)
	})

	t.Run("existing email conflicts without creating", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewAuthService(repo, newTestCredentialStore())

		repo.On("GetByEmail", ctx, "alice@example.com").Return(&models.User{Email: "alice@example.com"}, nil)

		_, err := svc.Register(ctx, req)
		assert.Equal(t, models.ErrorConflict{Message: models.MsgUserExists}, err)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unique index race maps to conflict", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewAuthService(repo, newTestCredentialStore())

		repo.On("GetByEmail", ctx, "alice@example.com").Return(nil, repositories.ErrNotFound)
		repo.On("Create", ctx, mock.Anything).Return(repositories.ErrDuplicateKey)

		_, err := svc.Register(ctx, req)
		assert.Equal(t, models.ErrorConflict{Message: models.MsgUserExists}, err)
	})

	t.Run("lookup failure is internal", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewAuthService(repo, newTestCredentialStore())

		repo.On("GetByEmail", ctx, "alice@example.com").Return(nil, errors.New("db down"))

		_, err := svc.Register(ctx, req)
		var internal models.ErrorInternalServer
		assert.ErrorAs(t, err, &internal)
	})

	t.Run("multibyte password over 72 bytes", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewAuthService(repo, newTestCredentialStore())
		repo.On("GetByEmail", ctx, "alice@example.com").Return(nil, repositories.ErrNotFound)

		long := req
		long.Password = strings.Repeat("é", 40)

		_, err := svc.Register(ctx, long)
		assert.Equal(t, models.ErrorInvalidInput{Message: models.MsgPasswordTooLong}, err)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepository), newTestCredentialStore())

		_, err := svc.Register(ctx, models.RegisterRequest{Email: "a@x.io", Password: "pw"})
		assert.Equal(t, models.ErrorInvalidInput{Message: models.MsgInvalidBody}, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	creds := newTestCredentialStore()
	hash, err := creds.HashPassword("pw123456")
	require.NoError(t, err)

	stored := &models.User{Email: "alice@example.com", Password: hash, Role: models.RoleUser, Status: models.StatusActive}

	t.Run("success", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewAuthService(repo, creds)
		repo.On("GetByEmail", ctx, "alice@example.com").Return(stored, nil)

		result, err := svc.Login(ctx, models.LoginRequest{Email: "ALICE@example.com", Password: "pw123456"})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, models.RoleUser, result.User.Role)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewAuthService(repo, creds)
		repo.On("GetByEmail", ctx, "alice@example.com").Return(stored, nil)
		repo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, repositories.ErrNotFound)

		_, errWrong := svc.Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: "nope"})
		_, errUnknown := svc.Login(ctx, models.LoginRequest{Email: "ghost@example.com", Password: "nope"})

		want := models.ErrorUnauthorized{Message: models.MsgInvalidCredentials}
		assert.Equal(t, want, errWrong)
		assert.Equal(t, want, errUnknown)
	})
}
