package google

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"google.golang.org/api/idtoken"

	"usman/config"
	"usman/internal/domain/entity"
	"usman/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(validate func(ctx context.Context, token, audience string) (*idtoken.Payload, error)) *loginProvider {
	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "client-id.apps.googleusercontent.com"}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	provider := NewLoginProvider(cfg, logger).(*loginProvider)
	provider.validate = validate

	return provider
}

func TestLoginProvider_VerifyToken_Success(t *testing.T) {
	provider := newTestProvider(func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		assert.Equal(t, "raw-id-token", token)
		assert.Equal(t, "client-id.apps.googleusercontent.com", audience)

		return &idtoken.Payload{
			Subject: "108000000000000000001",
			Claims: map[string]any{
				"email":          "jane@example.com",
				"email_verified": true,
				"name":           "Jane Doe",
				"picture":        "https://example.com/jane.png",
			},
		}, nil
	})

	ext, err := provider.VerifyToken(context.Background(), "raw-id-token")

	require.NoError(t, err)
	assert.Equal(t, ProviderName, ext.Provider)
	assert.Equal(t, "108000000000000000001", ext.Subject)
	assert.Equal(t, "jane@example.com", ext.Email)
	assert.True(t, ext.EmailVerified)
	assert.Equal(t, "Jane Doe", ext.Name)
	assert.Equal(t, "https://example.com/jane.png", ext.PictureURL)
}

func TestLoginProvider_VerifyToken_ValidationFailure(t *testing.T) {
	provider := newTestProvider(func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		return nil, errors.New("idtoken: token expired")
	})

	ext, err := provider.VerifyToken(context.Background(), "stale-token")

	require.Error(t, err)
	assert.Nil(t, ext)
}

func TestLoginProvider_VerifyToken_UnverifiedEmail(t *testing.T) {
	provider := newTestProvider(func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		return &idtoken.Payload{
			Subject: "108000000000000000001",
			Claims: map[string]any{
				"email":          "jane@example.com",
				"email_verified": false,
			},
		}, nil
	})

	ext, err := provider.VerifyToken(context.Background(), "raw-id-token")

	require.Error(t, err)
	assert.Nil(t, ext)
}

func TestLoginProvider_VerifyToken_MissingEmail(t *testing.T) {
	provider := newTestProvider(func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		return &idtoken.Payload{
			Subject: "108000000000000000001",
			Claims:  map[string]any{"email_verified": true},
		}, nil
	})

	ext, err := provider.VerifyToken(context.Background(), "raw-id-token")

	require.Error(t, err)
	assert.Nil(t, ext)
}

func TestLoginProvider_VerifyToken_UnconfiguredClientID(t *testing.T) {
	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	provider := NewLoginProvider(cfg, logger)

	ext, err := provider.VerifyToken(context.Background(), "raw-id-token")

	require.Error(t, err)
	assert.Nil(t, ext)
}

func TestLoginProvider_ProduceClaims(t *testing.T) {
	provider := newTestProvider(nil)

	claims := provider.ProduceClaims(&service.ExternalIdentity{
		Provider: ProviderName,
		Name:     "Jane Doe",
	})

	assert.True(t, claims.Contains(entity.ClaimTypeLoginProvider, ProviderName))
	value, ok := claims.First(entity.ClaimTypeDisplayName)
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", value)
}
