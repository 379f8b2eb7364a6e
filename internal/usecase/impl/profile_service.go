// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"figures/internal/domain/entity"
	domainerrors "figures/internal/domain/errors"
	"figures/internal/domain/repository"
	"figures/internal/errors"
	"figures/internal/usecase"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// ListProfiles normalizes the filter so "all" and blanks never reach the store.
func (srv *profileService) ListProfiles(ctx context.Context, filter entity.ProfileFilter) ([]*entity.Profile, error) {
	filter = filter.Normalize()
	srv.logger.Debug("Listing profiles",
		slog.String("category", filter.Category),
		slog.String("fame_level", filter.FameLevel.String()),
	)

	profiles, err := srv.profileRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}
	if profiles == nil {
		profiles = []*entity.Profile{}
	}

	return profiles, nil
}

// GetProfile retrieves a single profile by ID.
func (srv *profileService) GetProfile(ctx context.Context, id string) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "failed to get profile")
		}

		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}
