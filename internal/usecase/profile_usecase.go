// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"figures/internal/domain/entity"
)

// ProfileUsecase defines the read-only catalog operations.
type ProfileUsecase interface {
	// ListProfiles returns the profiles matching filter, newest first. Never nil.
	ListProfiles(ctx context.Context, filter entity.ProfileFilter) ([]*entity.Profile, error)
	// GetProfile returns one profile or ErrProfileNotFound.
	GetProfile(ctx context.Context, id string) (*entity.Profile, error)
}
