package repositories

import (
	"context"

	"blogify/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	// Create returns ErrDuplicateKey when the email is already registered.
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	// UpdateStatus reports whether a user with id exists.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.UserStatus) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}
