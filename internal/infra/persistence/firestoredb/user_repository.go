package firestoredb

import (
	"context"
	"time"

	"figures/internal/domain/entity"
	domainerrors "figures/internal/domain/errors"
	"figures/internal/domain/repository"
	"figures/internal/errors"
	"figures/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	client *firestore.Client
	now    func() time.Time
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{
		client: client,
		now:    time.Now,
	}
}

func (repo *userRepository) bySubject(subjectID string) firestore.Query {
	return repo.client.Collection(model.UsersCollection).
		Where(model.FieldExternalSubjectID, "==", subjectID).
		Limit(1)
}

// FindBySubjectID retrieves a user by external subject ID.
func (repo *userRepository) FindBySubjectID(ctx context.Context, subjectID string) (*entity.User, error) {
	snap, err := repo.findSnapshot(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	return decodeUser(snap)
}

// FindOrCreate runs the lookup and insert in one transaction so a subject maps to one document.
func (repo *userRepository) FindOrCreate(ctx context.Context, subjectID, email, displayName string) (*entity.User, error) {
	var user *entity.User

	err := repo.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snaps, err := tx.Documents(repo.bySubject(subjectID)).GetAll()
		if err != nil {
			return errors.Wrap(err, "query user")
		}

		if len(snaps) > 0 {
			user, err = decodeUser(snaps[0])

			return err
		}

		doc := model.NewUserDocument(subjectID, email, displayName, repo.now().UTC())
		ref := repo.client.Collection(model.UsersCollection).NewDoc()
		if err := tx.Create(ref, doc); err != nil {
			return errors.Wrap(err, "create user")
		}
		user = model.ToUserDomain(doc, ref.ID)

		return nil
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find or create user")
	}

	return user, nil
}

// AddFavorite applies ArrayUnion, which appends only values not already present.
func (repo *userRepository) AddFavorite(ctx context.Context, subjectID, profileID string) error {
	return repo.updateFavorites(ctx, subjectID, firestore.ArrayUnion(profileID))
}

// RemoveFavorite applies ArrayRemove; removing an absent value is a no-op.
func (repo *userRepository) RemoveFavorite(ctx context.Context, subjectID, profileID string) error {
	return repo.updateFavorites(ctx, subjectID, firestore.ArrayRemove(profileID))
}

func (repo *userRepository) updateFavorites(ctx context.Context, subjectID string, value any) error {
	snap, err := repo.findSnapshot(ctx, subjectID)
	if err != nil {
		return err
	}

	_, err = snap.Ref.Update(ctx, []firestore.Update{{Path: model.FieldFavorites, Value: value}})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update favorites")
	}

	return nil
}

func (repo *userRepository) findSnapshot(ctx context.Context, subjectID string) (*firestore.DocumentSnapshot, error) {
	snaps, err := repo.bySubject(subjectID).Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}
	if len(snaps) == 0 {
		return nil, repository.ErrUserNotFound
	}

	return snaps[0], nil
}

func decodeUser(snap *firestore.DocumentSnapshot) (*entity.User, error) {
	var doc model.UserDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode user "+snap.Ref.ID)
	}

	return model.ToUserDomain(&doc, snap.Ref.ID), nil
}
