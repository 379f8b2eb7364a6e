// Package entity contains the core business objects of the project.
package entity

// FameLevel classifies how widely known the subject of a profile is.
type FameLevel string

const (
	// FameLevelFamous marks a widely recognised figure.
	FameLevelFamous FameLevel = "famous"
	// FameLevelHidden marks a figure history has largely overlooked.
	FameLevelHidden FameLevel = "hidden"
)

// String returns the string representation of the FameLevel.
func (f FameLevel) String() string {
	return string(f)
}

// IsValid checks if the FameLevel is a valid value.
func (f FameLevel) IsValid() bool {
	switch f {
	case FameLevelFamous, FameLevelHidden:
		return true
	default:
		return false
	}
}
