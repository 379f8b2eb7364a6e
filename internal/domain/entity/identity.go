package entity

// Identity is the subject vouched for by the external identity provider.
type Identity struct {
	SubjectID   string // Provider-issued stable user ID (Firebase UID).
	Email       string
	DisplayName string
}
