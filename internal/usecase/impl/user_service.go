// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"figures/internal/domain/entity"
	domainerrors "figures/internal/domain/errors"
	"figures/internal/domain/repository"
	"figures/internal/errors"
	"figures/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:    params.UserRepo,
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

// FindOrCreateUser links the verified identity to an account.
func (srv *userService) FindOrCreateUser(ctx context.Context, identity *entity.Identity) (*entity.User, error) {
	if identity == nil || identity.SubjectID == "" {
		return nil, domainerrors.ErrUnauthenticated
	}
	// Phone and anonymous sign-ins carry no email, which every stored user requires.
	if strings.TrimSpace(identity.Email) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("identity has no email claim")
	}

	user, err := srv.userRepo.FindOrCreate(ctx, identity.SubjectID, identity.Email, identity.DisplayName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find or create user")
	}

	srv.logger.Debug("User resolved",
		slog.String("user_id", user.ID),
		slog.String("subject_id", identity.SubjectID),
	)

	return user, nil
}

// AddFavorite records profileID. The profile itself is not looked up.
func (srv *userService) AddFavorite(ctx context.Context, identity *entity.Identity, profileID string) error {
	if identity == nil || identity.SubjectID == "" {
		return domainerrors.ErrUnauthenticated
	}

	if err := srv.userRepo.AddFavorite(ctx, identity.SubjectID, profileID); err != nil {
		return mapUserError(err, "failed to add favorite")
	}

	srv.logger.Info("Favorite added",
		slog.String("subject_id", identity.SubjectID),
		slog.String("profile_id", profileID),
	)

	return nil
}

// RemoveFavorite drops profileID from the caller's favorites.
func (srv *userService) RemoveFavorite(ctx context.Context, identity *entity.Identity, profileID string) error {
	if identity == nil || identity.SubjectID == "" {
		return domainerrors.ErrUnauthenticated
	}

	if err := srv.userRepo.RemoveFavorite(ctx, identity.SubjectID, profileID); err != nil {
		return mapUserError(err, "failed to remove favorite")
	}

	srv.logger.Info("Favorite removed",
		slog.String("subject_id", identity.SubjectID),
		slog.String("profile_id", profileID),
	)

	return nil
}

// ListFavorites resolves favorites in their stored order. Dangling IDs are omitted.
func (srv *userService) ListFavorites(ctx context.Context, identity *entity.Identity) ([]*entity.Profile, error) {
	if identity == nil || identity.SubjectID == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	user, err := srv.userRepo.FindBySubjectID(ctx, identity.SubjectID)
	if err != nil {
		return nil, mapUserError(err, "failed to list favorites")
	}

	if len(user.Favorites) == 0 {
		return []*entity.Profile{}, nil
	}

	found, err := srv.profileRepo.FindByIDs(ctx, user.Favorites)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve favorites")
	}

	byID := make(map[string]*entity.Profile, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}

	profiles := make([]*entity.Profile, 0, len(byID))
	for _, id := range user.Favorites {
		if p, ok := byID[id]; ok {
			profiles = append(profiles, p)
		}
	}

	if dangling := len(user.Favorites) - len(profiles); dangling > 0 {
		srv.logger.Debug("Skipped favorites without a profile",
			slog.String("subject_id", identity.SubjectID),
			slog.Int("count", dangling),
		)
	}

	return profiles, nil
}

func mapUserError(err error, message string) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(domainerrors.ErrUserNotFound, message)
	}

	return errors.Wrap(err, message)
}
