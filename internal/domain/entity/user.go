// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system, representing a single member account.
// The SecurityStamp is a monotonically increasing version counter that is bumped
// on every security-sensitive change (password, username, email). Any session
// token carrying an older stamp is no longer authoritative.
type User struct {
	ID            uuid.UUID  `json:"id"`           // The Global Unique Identifier (GUID) for the user.
	Username      string     `json:"username"`     // The unique login name chosen by the user.
	Email         string     `json:"email"`        // The user's unique contact email.
	PhoneNumber   string     `json:"phone_number"` // Optional contact phone number.
	PasswordHash  string     `json:"-"`            // The bcrypt-hashed password credential. Never exposed outward.
	City          string     `json:"city"`         // Free-form city of residence; also surfaced as the "city" claim.
	Gender        Gender     `json:"gender"`       // The user's declared gender.
	BirthDate     *time.Time `json:"birth_date"`   // Optional date of birth.
	PictureRef    string     `json:"picture_ref"`  // Reference to the stored profile picture asset, empty if none.
	SecurityStamp int64      `json:"-"`            // Version counter invalidating outstanding sessions when bumped.
	CreatedAt     time.Time  `json:"created_at"`   // Timestamp of when this account was created.
	UpdatedAt     time.Time  `json:"updated_at"`   // Timestamp of the last modification to this account.
}
