package repositories

import (
	"context"
	"testing"
	"time"

	"blogify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func userDoc(id primitive.ObjectID, email string, role models.UserRole) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "email", Value: email},
		{Key: "username", Value: "someone"},
		{Key: "password", Value: "$2a$10$hash"},
		{Key: "role", Value: string(role)},
		{Key: "status", Value: string(models.StatusActive)},
		{Key: "profilePicture", Value: models.DefaultProfilePicture},
		{Key: "createdAt", Value: primitive.NewDateTimeFromTime(time.Now())},
	}
}

func TestMongoUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		user := &models.User{Email: "a@x.io"}
		require.NoError(mt, repo.Create(ctx, user))
		assert.False(mt, user.ID.IsZero())
	})

	mt.Run("create duplicate email", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: users index: email_1",
		}))

		err := repo.Create(ctx, &models.User{Email: "a@x.io"})
		assert.ErrorIs(mt, err, ErrDuplicateKey)
	})

	mt.Run("get by email keeps the hash for login", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		ns := mt.DB.Name() + "." + UsersCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, userDoc(primitive.NewObjectID(), "a@x.io", models.RoleAdmin)))

		user, err := repo.GetByEmail(ctx, "a@x.io")
		require.NoError(mt, err)
		assert.Equal(mt, "a@x.io", user.Email)
		assert.Equal(mt, "$2a$10$hash", user.Password)
		assert.True(mt, user.IsAdmin())
	})

	mt.Run("get by id not found", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		ns := mt.DB.Name() + "." + UsersCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.GetByID(ctx, primitive.NewObjectID())
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("list", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		ns := mt.DB.Name() + "." + UsersCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			userDoc(primitive.NewObjectID(), "a@x.io", models.RoleUser),
			userDoc(primitive.NewObjectID(), "b@x.io", models.RoleAdmin),
		))

		users, err := repo.List(ctx)
		require.NoError(mt, err)
		assert.Len(mt, users, 2)
	})

	mt.Run("update status matches even when unchanged", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(1)}, bson.E{Key: "nModified", Value: int32(0)}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(0)}, bson.E{Key: "nModified", Value: int32(0)}),
		)

		found, err := repo.UpdateStatus(ctx, primitive.NewObjectID(), models.StatusActive)
		require.NoError(mt, err)
		assert.True(mt, found)

		found, err = repo.UpdateStatus(ctx, primitive.NewObjectID(), models.StatusActive)
		require.NoError(mt, err)
		assert.False(mt, found)
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(1)}))

		deleted, err := repo.Delete(ctx, primitive.NewObjectID())
		require.NoError(mt, err)
		assert.True(mt, deleted)
	})

	mt.Run("ensure indexes", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(), mtest.CreateSuccessResponse())
		assert.NoError(mt, EnsureMongoIndexes(ctx, mt.DB))
	})
}
