// Package claims contains the claim providers consulted at sign-in and on
// each authenticated request.
package claims

import (
	"context"

	"github.com/pkg/errors"

	"usman/internal/domain/entity"
	"usman/internal/domain/repository"
	"usman/internal/domain/service"
)

// storedProvider surfaces the claims persisted for the user in the credential
// store, including role claims.
type storedProvider struct {
	claimRepo repository.ClaimRepository
}

// NewStoredProvider is the constructor for storedProvider.
func NewStoredProvider(claimRepo repository.ClaimRepository) service.ClaimProvider {
	return &storedProvider{claimRepo: claimRepo}
}

// ProduceClaims loads the user's persisted claims.
func (p *storedProvider) ProduceClaims(ctx context.Context, user *entity.User) (entity.Claims, error) {
	stored, err := p.claimRepo.ListByUserID(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stored claims")
	}

	claims := make(entity.Claims, 0, len(stored))
	for _, sc := range stored {
		claims = append(claims, entity.Claim{Type: sc.Type, Value: sc.Value})
	}

	return claims, nil
}
