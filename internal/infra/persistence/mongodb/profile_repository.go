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
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *mongo.Database) repository.ProfileRepository {
	return &profileRepository{
		coll: db.Collection(model.ProfilesCollection),
		now:  time.Now,
	}
}

// List returns matching profiles ordered by createdAt descending.
func (repo *profileRepository) List(ctx context.Context, filter entity.ProfileFilter) ([]*entity.Profile, error) {
	cursor, err := repo.coll.Find(ctx, profileFilterDoc(filter),
		options.Find().SetSort(bson.D{{Key: model.FieldCreatedAt, Value: -1}, {Key: "_id", Value: -1}}))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list profiles")
	}

	return decodeProfiles(ctx, cursor)
}

// FindByID retrieves a profile by its ObjectID hex string.
func (repo *profileRepository) FindByID(ctx context.Context, id string) (*entity.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrProfileNotFound
	}

	var doc model.ProfileDocument
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find profile")
	}

	return model.ToProfileDomain(&doc, doc.ID.Hex()), nil
}

// FindByIDs fetches the existing profiles among ids with a single $in query.
func (repo *profileRepository) FindByIDs(ctx context.Context, ids []string) ([]*entity.Profile, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return []*entity.Profile{}, nil
	}

	cursor, err := repo.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find profiles by ids")
	}

	return decodeProfiles(ctx, cursor)
}

// Create inserts a new profile. A preset CreatedAt is kept so imports can preserve catalog order.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	if err := profile.Validate(); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	doc := model.FromProfileDomain(profile)
	doc.ID = primitive.NewObjectID()
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = repo.now().UTC().Truncate(time.Millisecond)
	}

	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.ID = doc.ID.Hex()
	profile.CreatedAt = doc.CreatedAt
	profile.Achievements = doc.Achievements

	return nil
}

func profileFilterDoc(filter entity.ProfileFilter) bson.M {
	doc := bson.M{}
	if filter.Category != "" {
		doc[model.FieldCategory] = filter.Category
	}
	if filter.FameLevel != "" {
		doc[model.FieldFameLevel] = filter.FameLevel.String()
	}

	return doc
}

func decodeProfiles(ctx context.Context, cursor *mongo.Cursor) ([]*entity.Profile, error) {
	var docs []*model.ProfileDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode profiles")
	}

	profiles := make([]*entity.Profile, 0, len(docs))
	for _, doc := range docs {
		profiles = append(profiles, model.ToProfileDomain(doc, doc.ID.Hex()))
	}

	return profiles, nil
}
