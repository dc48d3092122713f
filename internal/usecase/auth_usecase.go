// Package usecase defines the application's business logic interfaces and DTOs.
package usecase

import (
	"context"
	"time"

	"usman/internal/domain/entity"

	"github.com/google/uuid"
)

// SignUpInput holds the data required to register a new member.
type SignUpInput struct {
	Username   string `json:"username" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	Persistent bool   `json:"persistent"`
}

// SignInInput holds the credentials for a password sign-in.
type SignInInput struct {
	Username   string `json:"username" validate:"required"`
	Password   string `json:"password" validate:"required"`
	Persistent bool   `json:"persistent"` // "Remember me": extends the session window.
}

// ExternalSignInInput holds a federated provider token for sign-in.
type ExternalSignInInput struct {
	Provider   string `json:"provider" validate:"required"`
	IDToken    string `json:"id_token" validate:"required"`
	Persistent bool   `json:"persistent"`
}

// SessionOutput is the result of establishing a session.
type SessionOutput struct {
	Token      string       `json:"token"`
	ExpiresAt  time.Time    `json:"expires_at"`
	Persistent bool         `json:"persistent"`
	User       *entity.User `json:"user"`
}

// AuthenticatedSession is the result of validating a session token on a request.
type AuthenticatedSession struct {
	User       *entity.User
	Claims     entity.Claims
	Persistent bool

	// RefreshedToken is non-empty when sliding expiration re-issued the token
	// transparently; the transport must deliver it back to the client.
	RefreshedToken   string
	RefreshExpiresAt time.Time
}

// AuthUsecase defines the session lifecycle operations: establishing,
// validating, and revoking sessions.
type AuthUsecase interface {
	// SignUp registers a new member and signs them in.
	SignUp(ctx context.Context, input *SignUpInput) (*SessionOutput, error)

	// SignIn verifies the password credential and issues a session token.
	SignIn(ctx context.Context, input *SignInInput) (*SessionOutput, error)

	// SignInExternal verifies a federated provider token, provisioning the
	// account on first sign-in, and issues a session token.
	SignInExternal(ctx context.Context, input *ExternalSignInInput) (*SessionOutput, error)

	// ValidateSession checks a session token against the user's current
	// security stamp and assembles the request's claim set. When sliding
	// expiration applies, the returned session carries a refreshed token.
	ValidateSession(ctx context.Context, token string) (*AuthenticatedSession, error)

	// RevokeAllSessions bumps the user's security stamp, invalidating every
	// outstanding session token at once.
	RevokeAllSessions(ctx context.Context, userID uuid.UUID) error
}
