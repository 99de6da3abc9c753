package repositories

import (
	"context"
	"errors"
	"time"

	"blogify/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

type postRecord struct {
	ID          string    `gorm:"primaryKey;size:24"`
	Title       string    `gorm:"not null"`
	Content     string    `gorm:"type:text;not null"`
	Tags        []string  `gorm:"serializer:json;type:text"`
	ImageURL    string    `gorm:"not null"`
	AuthorEmail string    `gorm:"index;not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (postRecord) TableName() string { return "posts" }

func newPostRecord(post *models.Post) *postRecord {
	return &postRecord{
		ID:          post.ID.Hex(),
		Title:       post.Title,
		Content:     post.Content,
		Tags:        post.Tags,
		ImageURL:    post.ImageURL,
		AuthorEmail: post.AuthorEmail,
		CreatedAt:   post.CreatedAt,
	}
}

func (p *postRecord) toModel() models.Post {
	id, _ := primitive.ObjectIDFromHex(p.ID)
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return models.Post{
		ID:          id,
		Title:       p.Title,
		Content:     p.Content,
		Tags:        tags,
		ImageURL:    p.ImageURL,
		AuthorEmail: p.AuthorEmail,
		CreatedAt:   p.CreatedAt,
	}
}

type gormPostRepository struct {
	db *gorm.DB
}

func NewGormPostRepository(db *gorm.DB) PostRepository {
	return &gormPostRepository{db: db}
}

func (r *gormPostRepository) Create(ctx context.Context, post *models.Post) error {
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	return r.db.WithContext(ctx).Create(newPostRecord(post)).Error
}

func (r *gormPostRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var rec postRecord
	err := r.db.WithContext(ctx).Where("id = ?", id.Hex()).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	post := rec.toModel()
	return &post, nil
}

func (r *gormPostRepository) List(ctx context.Context, skip, limit int) ([]models.Post, error) {
	var recs []postRecord
	err := r.db.WithContext(ctx).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return toPostModels(recs), nil
}

// EstimatedCount is an exact count on PostgreSQL.
func (r *gormPostRepository) EstimatedCount(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&postRecord{}).Count(&total).Error
	return total, err
}

func (r *gormPostRepository) ListByAuthor(ctx context.Context, authorEmail string) ([]models.Post, error) {
	var recs []postRecord
	err := r.db.WithContext(ctx).
		Where("author_email = ?", authorEmail).
		Order("id").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return toPostModels(recs), nil
}

func (r *gormPostRepository) Update(ctx context.Context, post *models.Post) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&postRecord{}).
		Where("id = ?", post.ID.Hex()).
		Updates(map[string]any{
			"title":     post.Title,
			"content":   post.Content,
			"image_url": post.ImageURL,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *gormPostRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id.Hex()).Delete(&postRecord{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func toPostModels(recs []postRecord) []models.Post {
	posts := make([]models.Post, 0, len(recs))
	for i := range recs {
		posts = append(posts, recs[i].toModel())
	}
	return posts
}

// AutoMigrate creates or updates the posts and users tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&userRecord{}, &postRecord{})
}
