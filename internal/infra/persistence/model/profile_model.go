package model

import (
	"time"

	"figures/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names shared by every document-store backend.
const (
	ProfilesCollection = "profiles"
	UsersCollection    = "users"
)

// ProfileDocument is the stored shape of a profile in both MongoDB and Firestore.
// Firestore keeps the ID in the document key, so ID is excluded there.
type ProfileDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" firestore:"-"`
	Name            string             `bson:"name" firestore:"name"`
	Category        string             `bson:"category" firestore:"category"`
	FameLevel       string             `bson:"fameLevel" firestore:"fameLevel"`
	Era             string             `bson:"era,omitempty" firestore:"era,omitempty"`
	Nationality     string             `bson:"nationality,omitempty" firestore:"nationality,omitempty"`
	Title           string             `bson:"title,omitempty" firestore:"title,omitempty"`
	ShortBio        string             `bson:"shortBio,omitempty" firestore:"shortBio,omitempty"`
	FullStory       string             `bson:"fullStory,omitempty" firestore:"fullStory,omitempty"`
	Quote           string             `bson:"quote,omitempty" firestore:"quote,omitempty"`
	Achievements    []string           `bson:"achievements" firestore:"achievements"`
	Inspiration     string             `bson:"inspiration,omitempty" firestore:"inspiration,omitempty"`
	ModernRelevance string             `bson:"modernRelevance,omitempty" firestore:"modernRelevance,omitempty"`
	Avatar          string             `bson:"avatar,omitempty" firestore:"avatar,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" firestore:"createdAt"`
}

// ToProfileDomain converts a stored document into the domain entity under the given ID.
func ToProfileDomain(doc *ProfileDocument, id string) *entity.Profile {
	if doc == nil {
		return nil
	}

	achievements := doc.Achievements
	if achievements == nil {
		achievements = []string{}
	}

	return &entity.Profile{
		ID:              id,
		Name:            doc.Name,
		Category:        doc.Category,
		FameLevel:       entity.FameLevel(doc.FameLevel),
		Era:             doc.Era,
		Nationality:     doc.Nationality,
		Title:           doc.Title,
		ShortBio:        doc.ShortBio,
		FullStory:       doc.FullStory,
		Quote:           doc.Quote,
		Achievements:    achievements,
		Inspiration:     doc.Inspiration,
		ModernRelevance: doc.ModernRelevance,
		Avatar:          doc.Avatar,
		CreatedAt:       doc.CreatedAt,
	}
}

// FromProfileDomain converts a domain profile into its stored shape. The ID is left to the caller.
func FromProfileDomain(p *entity.Profile) *ProfileDocument {
	if p == nil {
		return nil
	}

	achievements := p.Achievements
	if achievements == nil {
		achievements = []string{}
	}

	return &ProfileDocument{
		Name:            p.Name,
		Category:        p.Category,
		FameLevel:       p.FameLevel.String(),
		Era:             p.Era,
		Nationality:     p.Nationality,
		Title:           p.Title,
		ShortBio:        p.ShortBio,
		FullStory:       p.FullStory,
		Quote:           p.Quote,
		Achievements:    achievements,
		Inspiration:     p.Inspiration,
		ModernRelevance: p.ModernRelevance,
		Avatar:          p.Avatar,
		CreatedAt:       p.CreatedAt,
	}
}
