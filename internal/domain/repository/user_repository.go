// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"usman/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUsername is returned when the username uniqueness constraint is violated.
	ErrDuplicateUsername = errors.New("username already taken")
	// ErrDuplicateEmail is returned when the email uniqueness constraint is violated.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrStaleStamp is returned when an update loses the optimistic concurrency
	// check on the security stamp. The caller should re-fetch and retry.
	ErrStaleStamp = errors.New("stale security stamp")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by their login name.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update persists the user's mutable fields, including user.SecurityStamp,
	// guarded by optimistic concurrency: the row is matched on the user's ID
	// AND expectedStamp. If another writer committed in between, no row matches
	// and ErrStaleStamp is returned instead of silently overwriting.
	Update(ctx context.Context, user *entity.User, expectedStamp int64) error

	// BumpSecurityStamp atomically increments the user's security stamp and
	// returns the new value. Bumping the stamp invalidates every outstanding
	// session for the user without enumerating tokens.
	BumpSecurityStamp(ctx context.Context, id uuid.UUID) (int64, error)
}
