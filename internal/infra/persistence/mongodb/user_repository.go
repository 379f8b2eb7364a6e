package mongodb

import (
	"context"
	"time"

	"figures/internal/domain/entity"
	domainerrors "figures/internal/domain/errors"
	"figures/internal/domain/repository"
	"figures/internal/errors"
	"figures/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		coll: db.Collection(model.UsersCollection),
		now:  time.Now,
	}
}

// FindBySubjectID retrieves a user by external subject ID.
func (repo *userRepository) FindBySubjectID(ctx context.Context, subjectID string) (*entity.User, error) {
	var doc model.UserDocument
	if err := repo.coll.FindOne(ctx, subjectFilter(subjectID)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return model.ToUserDomain(&doc, doc.ID.Hex()), nil
}

// FindOrCreate upserts with $setOnInsert, so an existing user is never modified.
func (repo *userRepository) FindOrCreate(ctx context.Context, subjectID, email, displayName string) (*entity.User, error) {
	doc := model.NewUserDocument(subjectID, email, displayName, repo.now().UTC().Truncate(time.Millisecond))
	update := bson.M{"$setOnInsert": bson.M{
		"email":              doc.Email,
		"displayName":        doc.DisplayName,
		model.FieldFavorites: doc.Favorites,
		model.FieldCreatedAt: doc.CreatedAt,
	}}

	var stored model.UserDocument
	err := repo.coll.FindOneAndUpdate(ctx, subjectFilter(subjectID), update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&stored)
	if err != nil {
		// Two first requests can race on the unique index; the loser reads the winner's document.
		if mongo.IsDuplicateKeyError(err) {
			return repo.FindBySubjectID(ctx, subjectID)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find or create user")
	}

	return model.ToUserDomain(&stored, stored.ID.Hex()), nil
}

// AddFavorite uses $addToSet so duplicates are impossible even under concurrent writers.
func (repo *userRepository) AddFavorite(ctx context.Context, subjectID, profileID string) error {
	return repo.updateFavorites(ctx, subjectID, bson.M{"$addToSet": bson.M{model.FieldFavorites: profileID}})
}

// RemoveFavorite uses $pull; pulling an absent value matches the user and changes nothing.
func (repo *userRepository) RemoveFavorite(ctx context.Context, subjectID, profileID string) error {
	return repo.updateFavorites(ctx, subjectID, bson.M{"$pull": bson.M{model.FieldFavorites: profileID}})
}

func (repo *userRepository) updateFavorites(ctx context.Context, subjectID string, update bson.M) error {
	result, err := repo.coll.UpdateOne(ctx, subjectFilter(subjectID), update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update favorites")
	}

	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func subjectFilter(subjectID string) bson.M {
	return bson.M{model.FieldExternalSubjectID: subjectID}
}
