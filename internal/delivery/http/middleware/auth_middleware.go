package middleware

import (
	"net/http"
	"strings"

	"usman/internal/delivery/http/response"
	"usman/internal/delivery/http/session"
	"usman/internal/domain/entity"
	domainerrors "usman/internal/domain/errors"
	"usman/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys set by Authenticate for downstream middleware and handlers.
const (
	// KeyUserID holds the authenticated user's uuid.UUID.
	KeyUserID = "userID"
	// KeyUser holds the authenticated *entity.User.
	KeyUser = "user"
	// KeyClaims holds the request's entity.Claims.
	KeyClaims = "claims"
	// KeyPersistent holds the session's "remember me" choice.
	KeyPersistent = "sessionPersistent"
)

// AuthMiddleware authenticates requests against the session token, taken from
// the session cookie or an Authorization bearer header.
type AuthMiddleware struct {
	authUC  usecase.AuthUsecase
	cookies *session.CookieWriter
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase, cookies *session.CookieWriter) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC, cookies: cookies}
}

// Authenticate validates the session token. Validation re-checks the security
// stamp against the store, so a token issued before a password or identity
// change is rejected here regardless of its expiry. When sliding expiration
// re-issues the token, the refreshed cookie rides along on the response.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.extractToken(c)
		if token == "" {
			return response.Unauthorized(c, "SESSION_MISSING", "authentication required")
		}

		authSession, err := m.authUC.ValidateSession(c.Request().Context(), token)
		if err != nil {
			// A rejected token is useless; drop the cookie so the client stops
			// presenting it. Transient failures such as an unreachable store
			// keep the cookie, as the token may still be good.
			if isAuthFailure(err) {
				m.cookies.Clear(c)
			}

			return errors.WithStack(err)
		}

		if authSession.RefreshedToken != "" {
			m.cookies.Write(c, authSession.RefreshedToken, authSession.RefreshExpiresAt, authSession.Persistent)
		}

		c.Set(KeyUserID, authSession.User.ID)
		c.Set(KeyUser, authSession.User)
		c.Set(KeyClaims, authSession.Claims)
		c.Set(KeyPersistent, authSession.Persistent)

		return next(c)
	}
}

// isAuthFailure reports whether the validation error rejects the credential
// itself (expired, revoked, malformed) rather than failing to check it.
func isAuthFailure(err error) bool {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.HTTPCode() == http.StatusUnauthorized
}

// extractToken prefers the session cookie and falls back to a bearer token for
// non-browser clients.
func (m *AuthMiddleware) extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookies.Name()); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	if token := strings.TrimPrefix(authHeader, "Bearer "); token != authHeader {
		return token
	}

	return ""
}

// ClaimsFromContext returns the claim set Authenticate stored for this request.
func ClaimsFromContext(c echo.Context) (entity.Claims, bool) {
	claims, ok := c.Get(KeyClaims).(entity.Claims)

	return claims, ok
}
