// Package usecase defines the application's business logic interfaces and DTOs.
package usecase

import (
	"context"
	"io"
	"time"

	"usman/internal/domain/entity"

	"github.com/google/uuid"
)

// PictureUpload carries an optional profile picture replacement. The reader is
// consumed exactly once; the filename is only used for its extension.
type PictureUpload struct {
	Reader   io.Reader
	Filename string
}

// UpdateProfileInput holds the user-editable profile fields. All fields are
// validated together so every problem is reported in one pass.
type UpdateProfileInput struct {
	Username    string     `json:"username" validate:"required"`
	Email       string     `json:"email" validate:"required,email"`
	PhoneNumber string     `json:"phone_number"`
	City        string     `json:"city"`
	Gender      string     `json:"gender"`
	BirthDate   *time.Time `json:"birth_date"`

	// Persistent reflects the caller's current session choice, honored when
	// the session must be re-issued after a security-sensitive change.
	Persistent bool `json:"-"`

	Picture *PictureUpload `json:"-"`
}

// UpdateProfileOutput is the result of a profile update.
type UpdateProfileOutput struct {
	User *entity.User `json:"user"`

	// Token is non-empty when username or email changed: the security stamp was
	// bumped (signing out every other session) and the caller's session was
	// transparently re-issued.
	Token     string    `json:"token,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// ChangePasswordInput holds the credentials for a password rotation.
type ChangePasswordInput struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`

	// Persistent reflects the caller's current session choice; the re-issued
	// session always honors it.
	Persistent bool `json:"-"`
}

// ChangePasswordOutput carries the re-issued session after a rotation.
type ChangePasswordOutput struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ProfileOutput is the member's profile view, including the roles and claims
// derived for display.
type ProfileOutput struct {
	User   *entity.User  `json:"user"`
	Roles  []string      `json:"roles"`
	Claims entity.Claims `json:"claims"`
}

// MemberUsecase defines the profile and credential workflows for the
// signed-in member.
type MemberUsecase interface {
	// GetProfile retrieves the member's profile with roles and claims.
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)

	// UpdateProfile validates and applies the editable profile fields,
	// replacing the stored picture when one is supplied. Changing username or
	// email bumps the security stamp and re-issues the caller's session.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*UpdateProfileOutput, error)

	// ChangePassword verifies the old credential, rotates to the new one,
	// bumps the security stamp, and re-issues the caller's session.
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) (*ChangePasswordOutput, error)

	// GetRoles returns the role names assigned to the user.
	GetRoles(ctx context.Context, userID uuid.UUID) ([]string, error)
}
