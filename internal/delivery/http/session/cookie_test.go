package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usman/config"
)

func newTestWriter() *CookieWriter {
	return NewCookieWriter(&config.Config{
		Cookie: &config.CookieConfig{
			Name:     "Usman.KG",
			Path:     "/",
			Secure:   true,
			SameSite: "strict",
		},
	})
}

func writtenCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("cookie %q was not written", name)

	return nil
}

func TestCookieWriter_Write_Persistent(t *testing.T) {
	writer := newTestWriter()
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	expiresAt := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	writer.Write(c, "session_token", expiresAt, true)

	cookie := writtenCookie(t, rec, "Usman.KG")
	assert.Equal(t, "session_token", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	// Persistent cookies survive a browser restart.
	assert.WithinDuration(t, expiresAt, cookie.Expires, time.Second)
}

func TestCookieWriter_Write_SessionScoped(t *testing.T) {
	writer := newTestWriter()
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	writer.Write(c, "session_token", time.Now().Add(12*time.Hour), false)

	cookie := writtenCookie(t, rec, "Usman.KG")
	assert.Equal(t, "session_token", cookie.Value)
	// No expiry: the cookie dies with the browser.
	assert.True(t, cookie.Expires.IsZero())
}

func TestCookieWriter_Clear(t *testing.T) {
	writer := newTestWriter()
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	writer.Clear(c)

	cookie := writtenCookie(t, rec, "Usman.KG")
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
	assert.True(t, cookie.Expires.Before(time.Now()))
}

func TestParseSameSite(t *testing.T) {
	require.Equal(t, http.SameSiteStrictMode, parseSameSite("strict"))
	require.Equal(t, http.SameSiteNoneMode, parseSameSite("none"))
	require.Equal(t, http.SameSiteLaxMode, parseSameSite("lax"))
	require.Equal(t, http.SameSiteLaxMode, parseSameSite(""))
}
