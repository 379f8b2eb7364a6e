// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"
)

// User is an application account linked one-to-one with an external identity subject.
type User struct {
	ID                string    `json:"_id"`
	ExternalSubjectID string    `json:"externalSubjectId"` // Firebase UID, unique across users.
	Email             string    `json:"email"`
	DisplayName       string    `json:"displayName,omitempty"`
	Favorites         []string  `json:"favorites"` // Profile IDs in insertion order, no duplicates.
	CreatedAt         time.Time `json:"createdAt"`
}

// HasFavorite reports whether profileID is already in the favorites set.
func (u *User) HasFavorite(profileID string) bool {
	return slices.Contains(u.Favorites, profileID)
}

// AddFavorite appends profileID unless present. It reports whether the set changed.
func (u *User) AddFavorite(profileID string) bool {
	if u.HasFavorite(profileID) {
		return false
	}
	u.Favorites = append(u.Favorites, profileID)

	return true
}

// RemoveFavorite drops profileID if present. It reports whether the set changed.
func (u *User) RemoveFavorite(profileID string) bool {
	idx := slices.Index(u.Favorites, profileID)
	if idx < 0 {
		return false
	}
	u.Favorites = slices.Delete(u.Favorites, idx, idx+1)

	return true
}
