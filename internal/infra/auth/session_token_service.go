// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"usman/config"
	domainerrors "usman/internal/domain/errors"
	"usman/internal/domain/service"
)

// sessionTokenClaims is the wire shape of a session token. The security stamp
// travels inside the token so validation can compare it against the stored one.
type sessionTokenClaims struct {
	jwt.RegisteredClaims
	SecurityStamp int64 `json:"stamp"`
	Persistent    bool  `json:"persistent"`
}

// sessionTokenService implements SessionTokenService with HMAC-signed JWTs.
type sessionTokenService struct {
	secret        []byte
	persistentTTL time.Duration
	sessionTTL    time.Duration
	sliding       bool
}

// NewSessionTokenService is the constructor for sessionTokenService.
func NewSessionTokenService(cfg *config.Config) (service.SessionTokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &sessionTokenService{
		secret:        []byte(cfg.SecretKey.Session),
		persistentTTL: cfg.Session.PersistentTTL,
		sessionTTL:    cfg.Session.SessionTTL,
		sliding:       cfg.Session.Sliding,
	}, nil
}

// Issue creates a session token bound to the user's current security stamp.
// Persistent sessions ("remember me") get the long window.
func (s *sessionTokenService) Issue(userID uuid.UUID, securityStamp int64, persistent bool) (string, time.Time, error) {
	ttl := s.sessionTTL
	if persistent {
		ttl = s.persistentTTL
	}

	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := sessionTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		SecurityStamp: securityStamp,
		Persistent:    persistent,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign session token")
	}

	return token, expiresAt, nil
}

// Parse verifies the token signature and expiry and returns its claims.
func (s *sessionTokenService) Parse(tokenString string) (*service.SessionClaims, error) {
	var claims sessionTokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrSessionExpired, "session token expired")
		}

		return nil, errors.Wrap(err, "failed to parse session token")
	}
	if !token.Valid {
		return nil, errors.New("session token is not valid")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "session token subject is not a user id")
	}
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return nil, errors.New("session token is missing its validity window")
	}

	return &service.SessionClaims{
		UserID:        userID,
		SecurityStamp: claims.SecurityStamp,
		Persistent:    claims.Persistent,
		IssuedAt:      claims.IssuedAt.Time,
		ExpiresAt:     claims.ExpiresAt.Time,
	}, nil
}

// NeedsRefresh reports whether a still-valid token has passed the half-way
// point of its window. Disabled entirely when sliding expiration is off.
func (s *sessionTokenService) NeedsRefresh(claims *service.SessionClaims, now time.Time) bool {
	if !s.sliding || claims == nil {
		return false
	}
	if !now.Before(claims.ExpiresAt) {
		return false
	}

	halfway := claims.IssuedAt.Add(claims.ExpiresAt.Sub(claims.IssuedAt) / 2)

	return now.After(halfway)
}
