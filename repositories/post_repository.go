package repositories

import (
	"context"

	"blogify/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostRepository stores posts. List and ListByAuthor return posts in
// creation order.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	List(ctx context.Context, skip, limit int) ([]models.Post, error)
	EstimatedCount(ctx context.Context) (int64, error)
	ListByAuthor(ctx context.Context, authorEmail string) ([]models.Post, error)
	// Update persists title, content and imageUrl of post and reports
	// whether the stored document changed.
	Update(ctx context.Context, post *models.Post) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}
