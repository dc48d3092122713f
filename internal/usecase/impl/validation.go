// Package impl contains the implementation of the application's business logic.
package impl

import (
	"net/mail"
	"regexp"
	"strings"

	domainerrors "usman/internal/domain/errors"
	"usman/internal/domain/repository"

	"github.com/pkg/errors"
)

// usernamePattern matches the allowed login name characters.
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

const (
	minUsernameLength = 3
	maxUsernameLength = 64
)

// validateUsername appends username problems to the field error map.
func validateUsername(username string, fields domainerrors.FieldErrors) {
	switch {
	case strings.TrimSpace(username) == "":
		fields["username"] = "username is required"
	case len(username) < minUsernameLength:
		fields["username"] = "username must be at least 3 characters"
	case len(username) > maxUsernameLength:
		fields["username"] = "username must be at most 64 characters"
	case !usernamePattern.MatchString(username):
		fields["username"] = "username may only contain letters, digits, '.', '_' and '-'"
	}
}

// validateEmail appends email problems to the field error map.
func validateEmail(email string, fields domainerrors.FieldErrors) {
	if strings.TrimSpace(email) == "" {
		fields["email"] = "email is required"

		return
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		fields["email"] = "email is not well formed"
	}
}

// mapDuplicateKeyError converts uniqueness violations from the credential
// store into field-level errors so the caller can redisplay them. Other
// errors pass through unchanged.
func mapDuplicateKeyError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateUsername):
		return domainerrors.NewValidationError(domainerrors.FieldErrors{
			"username": "username already taken",
		})
	case errors.Is(err, repository.ErrDuplicateEmail):
		return domainerrors.NewValidationError(domainerrors.FieldErrors{
			"email": "email already registered",
		})
	default:
		return err
	}
}
