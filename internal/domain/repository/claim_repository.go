// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"usman/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrClaimNotFound is returned when a stored claim is not found.
var ErrClaimNotFound = errors.New("claim not found")

// ClaimRepository defines the operations for persisted user claims.
// Stored claims are one claim source; further claims are derived on the fly
// by claim providers.
type ClaimRepository interface {
	// ListByUserID retrieves all claims stored for a user.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.StoredClaim, error)

	// Add persists a new claim for a user.
	Add(ctx context.Context, claim *entity.StoredClaim) error

	// Remove deletes a stored claim by its (user, type, value) triple.
	Remove(ctx context.Context, userID uuid.UUID, claimType, value string) error
}
