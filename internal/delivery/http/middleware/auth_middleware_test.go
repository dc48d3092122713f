package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"usman/config"
	"usman/internal/delivery/http/session"
	"usman/internal/domain/entity"
	domainerrors "usman/internal/domain/errors"
	mockUsecase "usman/internal/mocks/usecase"
	"usman/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCookieName = "Usman.KG"

type authMiddlewareFixtures struct {
	middleware *AuthMiddleware
	authUC     *mockUsecase.MockAuthUsecase
}

func createTestAuthMiddleware(t *testing.T) *authMiddlewareFixtures {
	t.Helper()

	authUC := mockUsecase.NewMockAuthUsecase(t)
	cookies := session.NewCookieWriter(&config.Config{
		Cookie: &config.CookieConfig{
			Name:     testCookieName,
			Path:     "/",
			Secure:   true,
			SameSite: "strict",
		},
	})

	return &authMiddlewareFixtures{
		middleware: NewAuthMiddleware(authUC, cookies),
		authUC:     authUC,
	}
}

func newAuthTestContext(token string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/member/profile", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == testCookieName {
			return cookie
		}
	}

	return nil
}

func TestAuthMiddleware_Success(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c, rec := newAuthTestContext("session_token")
	user := &entity.User{ID: uuid.New(), Username: "jane.doe"}
	claims := entity.Claims{{Type: entity.ClaimTypeCity, Value: "Bishkek"}}

	fx.authUC.EXPECT().
		ValidateSession(mock.Anything, "session_token").
		Return(&usecase.AuthenticatedSession{User: user, Claims: claims, Persistent: true}, nil)

	nextCalled := false
	err := fx.middleware.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
	assert.Equal(t, user.ID, c.Get(KeyUserID))
	assert.Equal(t, user, c.Get(KeyUser))
	assert.Equal(t, claims, c.Get(KeyClaims))
	assert.Equal(t, true, c.Get(KeyPersistent))
	assert.Nil(t, sessionCookie(rec))
}

func TestAuthMiddleware_WritesRefreshedCookie(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c, rec := newAuthTestContext("session_token")
	user := &entity.User{ID: uuid.New()}
	refreshExpiry := time.Now().Add(24 * time.Hour)

	fx.authUC.EXPECT().
		ValidateSession(mock.Anything, "session_token").
		Return(&usecase.AuthenticatedSession{
			User:             user,
			Persistent:       true,
			RefreshedToken:   "refreshed_token",
			RefreshExpiresAt: refreshExpiry,
		}, nil)

	err := fx.middleware.Authenticate(func(c echo.Context) error {
		return nil
	})(c)

	require.NoError(t, err)
	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Equal(t, "refreshed_token", cookie.Value)
	assert.WithinDuration(t, refreshExpiry, cookie.Expires, time.Second)
}

func TestAuthMiddleware_RevokedSessionClearsCookie(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c, rec := newAuthTestContext("stale_token")

	fx.authUC.EXPECT().
		ValidateSession(mock.Anything, "stale_token").
		Return(nil, errors.Wrap(domainerrors.ErrStampMismatch, "invalid session token"))

	err := fx.middleware.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler must not run for a rejected session")

		return nil
	})(c)

	require.Error(t, err)
	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestAuthMiddleware_TransientFailureKeepsCookie(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c, rec := newAuthTestContext("session_token")

	// The token was never judged; the store just could not be reached. The
	// client keeps its cookie and retries.
	fx.authUC.EXPECT().
		ValidateSession(mock.Anything, "session_token").
		Return(nil, errors.New("dial tcp: connection refused"))

	err := fx.middleware.Authenticate(func(c echo.Context) error {
		return nil
	})(c)

	require.Error(t, err)
	assert.Nil(t, sessionCookie(rec))
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c, rec := newAuthTestContext("")

	err := fx.middleware.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler must not run without a token")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_BearerFallback(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/api/member/profile", nil)
	req.Header.Set("Authorization", "Bearer header_token")
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	user := &entity.User{ID: uuid.New()}
	fx.authUC.EXPECT().
		ValidateSession(mock.Anything, "header_token").
		Return(&usecase.AuthenticatedSession{User: user}, nil)

	err := fx.middleware.Authenticate(func(c echo.Context) error {
		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, user.ID, c.Get(KeyUserID))
}

func TestIsAuthFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "expired session", err: domainerrors.ErrSessionExpired, want: true},
		{name: "stamp mismatch", err: domainerrors.ErrStampMismatch, want: true},
		{name: "malformed token", err: errors.Wrap(domainerrors.ErrSessionInvalid, "invalid session token"), want: true},
		{name: "storage failure", err: errors.New("dial tcp: connection refused"), want: false},
		{name: "transaction failure", err: domainerrors.ErrTransactionFailed, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isAuthFailure(tt.err))
		})
	}
}
