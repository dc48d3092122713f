package service

import (
	"context"

	"usman/internal/domain/entity"
)

// ClaimProvider is a pluggable source of claims for an identity. Providers are
// consulted at sign-in and on each authenticated request; the resulting claim
// set is immutable for the remainder of that request.
type ClaimProvider interface {
	// ProduceClaims derives claims for the given user. A provider that has
	// nothing to add returns an empty set, not an error.
	ProduceClaims(ctx context.Context, user *entity.User) (entity.Claims, error)
}
