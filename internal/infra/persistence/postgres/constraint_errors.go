package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"usman/internal/domain/repository"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// PostgreSQL surfaces 23505 as "duplicate key value violates unique constraint".
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505")
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

// mapUserUniqueViolation converts a unique constraint violation on the users
// table into the matching duplicate sentinel. The violated constraint name
// carries the column, e.g. "users_username_key" or "users_email_key".
func mapUserUniqueViolation(err error) error {
	if !isUniqueConstraintViolation(err) {
		return err
	}

	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "username"):
		return repository.ErrDuplicateUsername
	case strings.Contains(errMsg, "email"):
		return repository.ErrDuplicateEmail
	default:
		return err
	}
}
