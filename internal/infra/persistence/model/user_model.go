package model

import (
	"time"

	"figures/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Field names referenced by queries and partial updates.
const (
	FieldExternalSubjectID = "externalSubjectId"
	FieldFavorites         = "favorites"
	FieldCreatedAt         = "createdAt"
	FieldCategory          = "category"
	FieldFameLevel         = "fameLevel"
)

// UserDocument is the stored shape of a user. externalSubjectId is unique.
type UserDocument struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" firestore:"-"`
	ExternalSubjectID string             `bson:"externalSubjectId" firestore:"externalSubjectId"`
	Email             string             `bson:"email" firestore:"email"`
	DisplayName       string             `bson:"displayName,omitempty" firestore:"displayName,omitempty"`
	Favorites         []string           `bson:"favorites" firestore:"favorites"`
	CreatedAt         time.Time          `bson:"createdAt" firestore:"createdAt"`
}

// ToUserDomain converts a stored user document into the domain entity under the given ID.
func ToUserDomain(doc *UserDocument, id string) *entity.User {
	if doc == nil {
		return nil
	}

	favorites := doc.Favorites
	if favorites == nil {
		favorites = []string{}
	}

	return &entity.User{
		ID:                id,
		ExternalSubjectID: doc.ExternalSubjectID,
		Email:             doc.Email,
		DisplayName:       doc.DisplayName,
		Favorites:         favorites,
		CreatedAt:         doc.CreatedAt,
	}
}

// NewUserDocument builds the document inserted on a subject's first authenticated request.
func NewUserDocument(subjectID, email, displayName string, now time.Time) *UserDocument {
	return &UserDocument{
		ExternalSubjectID: subjectID,
		Email:             email,
		DisplayName:       displayName,
		Favorites:         []string{},
		CreatedAt:         now,
	}
}
