// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"figures/internal/domain/entity"
	"figures/internal/errors"
)

// ErrProfileNotFound is returned when no profile has the given ID, including malformed IDs.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the read side of the profile catalog plus seeding.
type ProfileRepository interface {
	// List returns every profile matching filter, newest first.
	// The filter is expected to be normalized; an empty result is not an error.
	List(ctx context.Context, filter entity.ProfileFilter) ([]*entity.Profile, error)

	// FindByID retrieves a single profile.
	FindByID(ctx context.Context, id string) (*entity.Profile, error)

	// FindByIDs retrieves the profiles that exist among ids, in no particular order.
	// Unknown or malformed IDs are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*entity.Profile, error)

	// Create persists a new profile, assigning its ID and CreatedAt.
	Create(ctx context.Context, profile *entity.Profile) error
}
