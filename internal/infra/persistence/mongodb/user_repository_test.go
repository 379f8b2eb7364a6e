package mongodb

import (
	"context"
	"testing"
	"time"

	"figures/internal/domain/repository"
	"figures/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func userDoc(id primitive.ObjectID, subject, email string, favorites bson.A) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "externalSubjectId", Value: subject},
		{Key: "email", Value: email},
		{Key: "favorites", Value: favorites},
		{Key: "createdAt", Value: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func TestUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "figures.users"

	mt.Run("FindOrCreate returns the stored document", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: userDoc(id, "uid-1", "stored@example.com", bson.A{"p1"})},
		})

		user, err := repo.FindOrCreate(context.Background(), "uid-1", "fresh@example.com", "Fresh")
		require.NoError(t, err)
		assert.Equal(t, id.Hex(), user.ID)
		assert.Equal(t, "stored@example.com", user.Email)
		assert.Equal(t, []string{"p1"}, user.Favorites)
	})

	mt.Run("FindOrCreate falls back to a read after a duplicate key race", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCommandErrorResponse(mtest.CommandError{
				Code:    11000,
				Message: "E11000 duplicate key error",
				Name:    "DuplicateKey",
			}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, userDoc(id, "uid-1", "winner@example.com", bson.A{})),
		)

		user, err := repo.FindOrCreate(context.Background(), "uid-1", "loser@example.com", "")
		require.NoError(t, err)
		assert.Equal(t, id.Hex(), user.ID)
		assert.Equal(t, "winner@example.com", user.Email)
		assert.Equal(t, []string{}, user.Favorites)
	})

	mt.Run("FindBySubjectID missing", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.FindBySubjectID(context.Background(), "ghost")
		assert.True(t, errors.Is(err, repository.ErrUserNotFound))
	})

	mt.Run("AddFavorite on unknown user", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		err := repo.AddFavorite(context.Background(), "ghost", "p1")
		assert.True(t, errors.Is(err, repository.ErrUserNotFound))
	})

	mt.Run("AddFavorite already present still succeeds", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
		))

		assert.NoError(t, repo.AddFavorite(context.Background(), "uid-1", "p1"))
	})

	mt.Run("RemoveFavorite absent id is a no-op", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
		))

		assert.NoError(t, repo.RemoveFavorite(context.Background(), "uid-1", "never-added"))
	})
}
