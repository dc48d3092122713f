package claims

import (
	"context"

	"usman/internal/domain/entity"
	"usman/internal/domain/service"
)

// cityProvider derives a city claim from the user's profile. The claim tracks
// the profile field, so editing the city immediately changes what the city
// policies see.
type cityProvider struct{}

// NewCityProvider is the constructor for cityProvider.
func NewCityProvider() service.ClaimProvider {
	return &cityProvider{}
}

// ProduceClaims emits a city claim when the profile has one.
func (p *cityProvider) ProduceClaims(_ context.Context, user *entity.User) (entity.Claims, error) {
	if user.City == "" {
		return entity.Claims{}, nil
	}

	return entity.Claims{{Type: entity.ClaimTypeCity, Value: user.City}}, nil
}
