package repositories

import (
	"context"
	"errors"
	"time"

	"blogify/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

type userRecord struct {
	ID             string `gorm:"primaryKey;size:24"`
	Email          string `gorm:"uniqueIndex;not null"`
	Username       string `gorm:"not null"`
	Password       string `gorm:"not null"`
	Role           string `gorm:"size:16;not null"`
	Status         string `gorm:"size:16;not null"`
	ProfilePicture string
	CreatedAt      time.Time `gorm:"not null"`
}

func (userRecord) TableName() string { return "users" }

func newUserRecord(user *models.User) *userRecord {
	return &userRecord{
		ID:             user.ID.Hex(),
		Email:          user.Email,
		Username:       user.Username,
		Password:       user.Password,
		Role:           string(user.Role),
		Status:         string(user.Status),
		ProfilePicture: user.ProfilePicture,
		CreatedAt:      user.CreatedAt,
	}
}

func (u *userRecord) toModel() models.User {
	id, _ := primitive.ObjectIDFromHex(u.ID)
	return models.User{
		ID:             id,
		Email:          u.Email,
		Username:       u.Username,
		Password:       u.Password,
		Role:           models.UserRole(u.Role),
		Status:         models.UserStatus(u.Status),
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
	}
}

type gormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	err := r.db.WithContext(ctx).Create(newUserRecord(user)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	return err
}

func (r *gormUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.take(ctx, "email = ?", email)
}

func (r *gormUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return r.take(ctx, "id = ?", id.Hex())
}

func (r *gormUserRepository) List(ctx context.Context) ([]models.User, error) {
	var recs []userRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&recs).Error; err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(recs))
	for i := range recs {
		users = append(users, recs[i].toModel())
	}
	return users, nil
}

func (r *gormUserRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.UserStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&userRecord{}).
		Where("id = ?", id.Hex()).
		Update("status", string(status))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *gormUserRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id.Hex()).Delete(&userRecord{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *gormUserRepository) take(ctx context.Context, query string, arg any) (*models.User, error) {
	var rec userRecord
	err := r.db.WithContext(ctx).Where(query, arg).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	user := rec.toModel()
	return &user, nil
}
