package service

import (
	"time"

	"github.com/google/uuid"
)

// SessionClaims is the payload a session token carries. The embedded security
// stamp is the revocation mechanism: a token whose stamp no longer matches the
// user's current stamp is invalid regardless of its expiry.
type SessionClaims struct {
	UserID        uuid.UUID
	SecurityStamp int64
	Persistent    bool // Whether the user asked to stay signed in ("remember me").
	IssuedAt      time.Time
	ExpiresAt     time.Time
}

// SessionTokenService defines the interface for issuing and parsing session tokens.
// This abstracts the token format (JWT) from the use cases.
type SessionTokenService interface {
	// Issue creates a signed session token bound to the user's current security
	// stamp. Persistent sessions get the long "remember me" window, others the
	// short default.
	Issue(userID uuid.UUID, securityStamp int64, persistent bool) (token string, expiresAt time.Time, err error)

	// Parse verifies the token's signature and expiry and returns its claims.
	// An expired token fails with a domain session-expired error.
	Parse(token string) (*SessionClaims, error)

	// NeedsRefresh reports whether sliding expiration should transparently
	// re-issue the token: more than half the session window has elapsed.
	NeedsRefresh(claims *SessionClaims, now time.Time) bool
}
