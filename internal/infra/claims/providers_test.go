package claims

import (
	"context"
	"testing"

	"usman/internal/domain/entity"
	mockRepo "usman/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoredProvider_ProduceClaims(t *testing.T) {
	claimRepo := mockRepo.NewMockClaimRepository(t)
	provider := NewStoredProvider(claimRepo)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}
	stored := []*entity.StoredClaim{
		{UserID: user.ID, Type: entity.ClaimTypeRole, Value: "member"},
		{UserID: user.ID, Type: entity.ClaimTypeViolence, Value: ""},
	}

	claimRepo.EXPECT().ListByUserID(ctx, user.ID).Return(stored, nil)

	claims, err := provider.ProduceClaims(ctx, user)

	require.NoError(t, err)
	assert.Equal(t, entity.Claims{
		{Type: entity.ClaimTypeRole, Value: "member"},
		{Type: entity.ClaimTypeViolence, Value: ""},
	}, claims)
}

func TestStoredProvider_ProduceClaims_RepositoryFailure(t *testing.T) {
	claimRepo := mockRepo.NewMockClaimRepository(t)
	provider := NewStoredProvider(claimRepo)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}

	claimRepo.EXPECT().ListByUserID(ctx, user.ID).Return(nil, errors.New("connection reset"))

	claims, err := provider.ProduceClaims(ctx, user)

	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestCityProvider_ProduceClaims(t *testing.T) {
	provider := NewCityProvider()
	ctx := context.Background()

	claims, err := provider.ProduceClaims(ctx, &entity.User{City: "Bishkek"})
	require.NoError(t, err)
	assert.Equal(t, entity.Claims{{Type: entity.ClaimTypeCity, Value: "Bishkek"}}, claims)

	claims, err = provider.ProduceClaims(ctx, &entity.User{})
	require.NoError(t, err)
	assert.Empty(t, claims)
}
