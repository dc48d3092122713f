// Package entity contains the core business objects of the project.
package entity

// Gender represents the user's declared gender.
type Gender string

const (
	// GenderUnspecified indicates the user has not declared a gender.
	GenderUnspecified Gender = "unspecified"
	// GenderMale indicates a male user.
	GenderMale Gender = "male"
	// GenderFemale indicates a female user.
	GenderFemale Gender = "female"
)

// String returns the string representation of the Gender.
func (g Gender) String() string {
	return string(g)
}

// IsValid checks if the Gender is a valid value.
func (g Gender) IsValid() bool {
	switch g {
	case GenderUnspecified, GenderMale, GenderFemale:
		return true
	default:
		return false
	}
}
