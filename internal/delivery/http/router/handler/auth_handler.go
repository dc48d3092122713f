// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"usman/internal/delivery/http/response"
	"usman/internal/delivery/http/session"
	"usman/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the session lifecycle handlers.
type AuthHandler struct {
	authUC  usecase.AuthUsecase
	cookies *session.CookieWriter
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(authUC usecase.AuthUsecase, cookies *session.CookieWriter, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUC:  authUC,
		cookies: cookies,
		logger:  logger,
	}
}

// SignUp handles the registration request and signs the new member in.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var input *usecase.SignUpInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-up input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUC.SignUp(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.Write(c, output.Token, output.ExpiresAt, output.Persistent)

	return response.Success(c, http.StatusCreated, output, "Signed up successfully")
}

// SignIn handles the password sign-in request.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var input *usecase.SignInInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUC.SignIn(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.Write(c, output.Token, output.ExpiresAt, output.Persistent)

	return response.Success(c, http.StatusOK, output, "Signed in successfully")
}

// SignInGoogle handles a federated sign-in with a Google ID token.
func (h *AuthHandler) SignInGoogle(c echo.Context) error {
	var input *usecase.ExternalSignInInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid external sign-in input")
	}
	input.Provider = "google"
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUC.SignInExternal(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.Write(c, output.Token, output.ExpiresAt, output.Persistent)

	return response.Success(c, http.StatusOK, output, "Signed in successfully")
}

// SignOut drops the caller's session cookie. The token itself stays valid
// until it expires or the security stamp moves; revoking every device is the
// RevokeAllSessions endpoint.
func (h *AuthHandler) SignOut(c echo.Context) error {
	h.cookies.Clear(c)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Signed out"}, "Signed out successfully")
}

// RevokeAllSessions bumps the caller's security stamp, signing out every
// device at once, then drops the cookie.
func (h *AuthHandler) RevokeAllSessions(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Invalid user in session")
	}

	if err := h.authUC.RevokeAllSessions(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	h.cookies.Clear(c)

	return response.Success(c, http.StatusOK, map[string]string{"message": "All sessions revoked"}, "All sessions revoked")
}
