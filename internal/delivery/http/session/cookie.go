// Package session writes and clears the session cookie. The cookie carries
// the signed session token; its lifetime mirrors the token's "remember me"
// choice.
package session

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"usman/config"
)

// CookieWriter centralizes how the session cookie is written so sign-in,
// sliding refresh, and sign-out all agree on its attributes.
type CookieWriter struct {
	name     string
	path     string
	secure   bool
	sameSite http.SameSite
}

// NewCookieWriter is the constructor for CookieWriter.
func NewCookieWriter(cfg *config.Config) *CookieWriter {
	return &CookieWriter{
		name:     cfg.Cookie.Name,
		path:     cfg.Cookie.Path,
		secure:   cfg.Cookie.Secure,
		sameSite: parseSameSite(cfg.Cookie.SameSite),
	}
}

// Name returns the session cookie name.
func (w *CookieWriter) Name() string {
	return w.name
}

// Write sets the session cookie. Persistent sessions get an explicit expiry so
// the browser keeps the cookie across restarts; otherwise it is a session
// cookie that dies with the browser.
func (w *CookieWriter) Write(c echo.Context, token string, expiresAt time.Time, persistent bool) {
	cookie := w.base()
	cookie.Value = token
	if persistent {
		cookie.Expires = expiresAt
	}
	c.SetCookie(cookie)
}

// Clear expires the session cookie immediately.
func (w *CookieWriter) Clear(c echo.Context) {
	cookie := w.base()
	cookie.Value = ""
	cookie.Expires = time.Unix(0, 0)
	cookie.MaxAge = -1
	c.SetCookie(cookie)
}

func (w *CookieWriter) base() *http.Cookie {
	return &http.Cookie{
		Name:     w.name,
		Path:     w.path,
		HttpOnly: true,
		Secure:   w.secure,
		SameSite: w.sameSite,
	}
}

func parseSameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
