// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"figures/internal/domain/entity"
	"figures/internal/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines user persistence. Every lookup is keyed by the
// external subject ID so callers can only reach their own record.
type UserRepository interface {
	// FindBySubjectID retrieves the user linked to an identity subject.
	FindBySubjectID(ctx context.Context, subjectID string) (*entity.User, error)

	// FindOrCreate returns the user for subjectID, creating it with empty favorites on first sight.
	// An existing user is returned unchanged; email and displayName are only used on creation.
	FindOrCreate(ctx context.Context, subjectID, email, displayName string) (*entity.User, error)

	// AddFavorite adds profileID to the user's favorites if not already present.
	AddFavorite(ctx context.Context, subjectID, profileID string) error

	// RemoveFavorite removes profileID from the user's favorites; absent IDs are a no-op.
	RemoveFavorite(ctx context.Context, subjectID, profileID string) error
}
