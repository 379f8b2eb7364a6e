// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"figures/internal/domain/entity"
)

// UserUsecase defines account and favorites operations. Every call is scoped
// to a verified identity, never to a client-supplied user ID.
type UserUsecase interface {
	// FindOrCreateUser returns the account linked to identity, creating it on first sight.
	FindOrCreateUser(ctx context.Context, identity *entity.Identity) (*entity.User, error)

	// AddFavorite records profileID in the caller's favorites. Repeats are no-ops.
	AddFavorite(ctx context.Context, identity *entity.Identity, profileID string) error

	// RemoveFavorite drops profileID from the caller's favorites. Absent IDs are no-ops.
	RemoveFavorite(ctx context.Context, identity *entity.Identity, profileID string) error

	// ListFavorites resolves the caller's favorites in stored order, skipping deleted profiles.
	ListFavorites(ctx context.Context, identity *entity.Identity) ([]*entity.Profile, error)
}
