// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"figures/internal/errors"
)

// CategoryAll is the query sentinel meaning "any category". It is never stored.
const CategoryAll = "all"

// Profile is a read-only catalog entry describing a notable individual.
type Profile struct {
	ID              string    `json:"_id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	FameLevel       FameLevel `json:"fameLevel"`
	Era             string    `json:"era,omitempty"`
	Nationality     string    `json:"nationality,omitempty"`
	Title           string    `json:"title,omitempty"`
	ShortBio        string    `json:"shortBio,omitempty"`
	FullStory       string    `json:"fullStory,omitempty"`
	Quote           string    `json:"quote,omitempty"`
	Achievements    []string  `json:"achievements"`
	Inspiration     string    `json:"inspiration,omitempty"`
	ModernRelevance string    `json:"modernRelevance,omitempty"`
	Avatar          string    `json:"avatar,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Validate checks the fields every stored profile must carry.
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("profile name is required")
	}
	if strings.TrimSpace(p.Category) == "" {
		return errors.New("profile category is required")
	}
	if strings.EqualFold(p.Category, CategoryAll) {
		return errors.Errorf("profile category %q is reserved", p.Category)
	}
	if !p.FameLevel.IsValid() {
		return errors.Errorf("invalid fame level: %q", p.FameLevel)
	}

	return nil
}

// ProfileFilter narrows a profile listing. Zero-valued fields do not constrain.
type ProfileFilter struct {
	Category  string
	FameLevel FameLevel
}

// Normalize folds the "all" sentinel into the unconstrained empty value.
func (f ProfileFilter) Normalize() ProfileFilter {
	f.Category = strings.TrimSpace(f.Category)
	if f.Category == CategoryAll {
		f.Category = ""
	}
	f.FameLevel = FameLevel(strings.TrimSpace(string(f.FameLevel)))

	return f
}

// Matches reports whether p satisfies the filter. The filter must be normalized.
func (f ProfileFilter) Matches(p *Profile) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.FameLevel != "" && p.FameLevel != f.FameLevel {
		return false
	}

	return true
}
