package firestoredb

import (
	"context"
	"time"

	"figures/internal/domain/entity"
	domainerrors "figures/internal/domain/errors"
	"figures/internal/domain/repository"
	"figures/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
)

// profileRepository implements the repository.ProfileRepository interface.
// Filtered listings need composite indexes on (category|fameLevel, createdAt desc).
type profileRepository struct {
	client *firestore.Client
	now    func() time.Time
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(client *firestore.Client) repository.ProfileRepository {
	return &profileRepository{
		client: client,
		now:    time.Now,
	}
}

func (repo *profileRepository) coll() *firestore.CollectionRef {
	return repo.client.Collection(model.ProfilesCollection)
}

// List returns matching profiles ordered by createdAt descending.
func (repo *profileRepository) List(ctx context.Context, filter entity.ProfileFilter) ([]*entity.Profile, error) {
	query := repo.coll().Query
	if filter.Category != "" {
		query = query.Where(model.FieldCategory, "==", filter.Category)
	}
	if filter.FameLevel != "" {
		query = query.Where(model.FieldFameLevel, "==", filter.FameLevel.String())
	}

	snaps, err := query.OrderBy(model.FieldCreatedAt, firestore.Desc).Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list profiles")
	}

	return decodeProfiles(snaps)
}

// FindByID retrieves a profile by document ID.
func (repo *profileRepository) FindByID(ctx context.Context, id string) (*entity.Profile, error) {
	if !validDocID(id) {
		return nil, repository.ErrProfileNotFound
	}

	snap, err := repo.coll().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find profile")
	}

	profiles, err := decodeProfiles([]*firestore.DocumentSnapshot{snap})
	if err != nil {
		return nil, err
	}

	return profiles[0], nil
}

// FindByIDs batch-reads the documents; snapshots of missing documents are skipped.
func (repo *profileRepository) FindByIDs(ctx context.Context, ids []string) ([]*entity.Profile, error) {
	refs := make([]*firestore.DocumentRef, 0, len(ids))
	for _, id := range ids {
		if validDocID(id) {
			refs = append(refs, repo.coll().Doc(id))
		}
	}
	if len(refs) == 0 {
		return []*entity.Profile{}, nil
	}

	snaps, err := repo.client.GetAll(ctx, refs)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find profiles by ids")
	}

	existing := make([]*firestore.DocumentSnapshot, 0, len(snaps))
	for _, snap := range snaps {
		if snap.Exists() {
			existing = append(existing, snap)
		}
	}

	return decodeProfiles(existing)
}

// Create stores a new profile under a generated document ID.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	if err := profile.Validate(); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	doc := model.FromProfileDomain(profile)
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = repo.now().UTC()
	}

	ref := repo.coll().NewDoc()
	if _, err := ref.Create(ctx, doc); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.ID = ref.ID
	profile.CreatedAt = doc.CreatedAt
	profile.Achievements = doc.Achievements

	return nil
}

func decodeProfiles(snaps []*firestore.DocumentSnapshot) ([]*entity.Profile, error) {
	profiles := make([]*entity.Profile, 0, len(snaps))
	for _, snap := range snaps {
		var doc model.ProfileDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode profile "+snap.Ref.ID)
		}
		profiles = append(profiles, model.ToProfileDomain(&doc, snap.Ref.ID))
	}

	return profiles, nil
}
