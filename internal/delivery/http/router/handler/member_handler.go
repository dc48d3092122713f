package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"usman/internal/delivery/http/middleware"
	"usman/internal/delivery/http/response"
	"usman/internal/delivery/http/session"
	domainerrors "usman/internal/domain/errors"
	"usman/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const birthDateLayout = "2006-01-02"

// MemberHandler holds dependencies for the profile and credential handlers.
type MemberHandler struct {
	memberUC usecase.MemberUsecase
	cookies  *session.CookieWriter
	logger   *slog.Logger
}

// NewMemberHandler is the constructor for MemberHandler, injected by Fx.
func NewMemberHandler(memberUC usecase.MemberUsecase, cookies *session.CookieWriter, logger *slog.Logger) *MemberHandler {
	return &MemberHandler{
		memberUC: memberUC,
		cookies:  cookies,
		logger:   logger,
	}
}

// GetProfile returns the caller's profile with roles and claims.
func (h *MemberHandler) GetProfile(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Invalid user in session")
	}

	output, err := h.memberUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Profile retrieved successfully")
}

// UpdateProfile applies the editable profile fields. Accepts JSON, or
// multipart form data when a new picture rides along. When the update bumped
// the security stamp, the re-issued session cookie is written back.
func (h *MemberHandler) UpdateProfile(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Invalid user in session")
	}

	input, err := h.bindProfileInput(c)
	if err != nil {
		return errors.WithStack(err)
	}
	defer closeUpload(input.Picture)

	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}
	input.Persistent, _ = c.Get(middleware.KeyPersistent).(bool)

	output, err := h.memberUC.UpdateProfile(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	if output.Token != "" {
		h.cookies.Write(c, output.Token, output.ExpiresAt, input.Persistent)
	}

	return response.Success(c, http.StatusOK, output, "Profile updated successfully")
}

// ChangePassword rotates the caller's password and writes back the re-issued
// session cookie.
func (h *MemberHandler) ChangePassword(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Invalid user in session")
	}

	var input *usecase.ChangePasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password change input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}
	input.Persistent, _ = c.Get(middleware.KeyPersistent).(bool)

	output, err := h.memberUC.ChangePassword(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.Write(c, output.Token, output.ExpiresAt, input.Persistent)

	return response.Success(c, http.StatusOK, output, "Password changed successfully")
}

// GetRoles returns the caller's role names.
func (h *MemberHandler) GetRoles(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Invalid user in session")
	}

	roles, err := h.memberUC.GetRoles(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string][]string{"roles": roles}, "Roles retrieved successfully")
}

// bindProfileInput reads the profile update from either a JSON body or a
// multipart form carrying a picture file.
func (h *MemberHandler) bindProfileInput(c echo.Context) (*usecase.UpdateProfileInput, error) {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		var input *usecase.UpdateProfileInput
		if err := c.Bind(&input); err != nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid profile input")
		}

		return input, nil
	}

	input := &usecase.UpdateProfileInput{
		Username:    c.FormValue("username"),
		Email:       c.FormValue("email"),
		PhoneNumber: c.FormValue("phone_number"),
		City:        c.FormValue("city"),
		Gender:      c.FormValue("gender"),
	}

	if birthDate := c.FormValue("birth_date"); birthDate != "" {
		parsed, err := time.Parse(birthDateLayout, birthDate)
		if err != nil {
			return nil, domainerrors.NewValidationError(domainerrors.FieldErrors{
				"birth_date": "birth_date must be formatted as " + birthDateLayout,
			})
		}
		input.BirthDate = &parsed
	}

	if fileHeader, err := c.FormFile("picture"); err == nil {
		src, err := fileHeader.Open()
		if err != nil {
			return nil, errors.Wrap(err, "failed to open uploaded picture")
		}
		// The reader is consumed by the asset store before the handler returns
		// and is closed by the caller once the update finishes.
		input.Picture = &usecase.PictureUpload{
			Reader:   src,
			Filename: fileHeader.Filename,
		}
	}

	return input, nil
}

// closeUpload releases the underlying multipart file of a picture upload,
// if any was attached.
func closeUpload(picture *usecase.PictureUpload) {
	if picture == nil {
		return
	}
	if closer, ok := picture.Reader.(io.Closer); ok {
		_ = closer.Close()
	}
}

// userIDFromContext reads the authenticated user ID set by the auth middleware.
func userIDFromContext(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(middleware.KeyUserID).(uuid.UUID)

	return userID, ok
}
