// Package google implements the Google federated login provider.
package google

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"

	"usman/config"
	"usman/internal/domain/entity"
	"usman/internal/domain/service"
)

// ProviderName selects this provider at sign-in.
const ProviderName = "google"

// loginProvider verifies Google-issued ID tokens against the configured OAuth
// client ID. Signature and expiry checks are delegated to Google's validator,
// which fetches and caches the signing certificates.
type loginProvider struct {
	clientID string
	logger   *slog.Logger

	// validate is swapped in tests; idtoken.Validate in production.
	validate func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
}

// NewLoginProvider is the constructor for the Google login provider.
func NewLoginProvider(cfg *config.Config, logger *slog.Logger) service.ExternalLoginProvider {
	return &loginProvider{
		clientID: cfg.GoogleOAuth.ClientID,
		logger:   logger,
		validate: idtoken.Validate,
	}
}

// Name returns the provider name used to select it at sign-in.
func (p *loginProvider) Name() string {
	return ProviderName
}

// VerifyToken verifies a Google ID token and returns the asserted identity.
func (p *loginProvider) VerifyToken(ctx context.Context, token string) (*service.ExternalIdentity, error) {
	if p.clientID == "" {
		return nil, errors.New("google client id is not configured")
	}

	payload, err := p.validate(ctx, token, p.clientID)
	if err != nil {
		p.logger.Warn("Google ID token validation failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "google id token validation failed")
	}

	email, _ := payload.Claims["email"].(string)
	emailVerified, _ := payload.Claims["email_verified"].(bool)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	if email == "" || !emailVerified {
		return nil, errors.New("google account email is missing or unverified")
	}

	p.logger.Debug("Google ID token verified", slog.String("subject", payload.Subject))

	return &service.ExternalIdentity{
		Provider:      ProviderName,
		Subject:       payload.Subject,
		Email:         email,
		EmailVerified: emailVerified,
		Name:          name,
		PictureURL:    picture,
	}, nil
}

// ProduceClaims derives session claims from the verified external identity.
func (p *loginProvider) ProduceClaims(ext *service.ExternalIdentity) entity.Claims {
	claims := entity.Claims{
		{Type: entity.ClaimTypeLoginProvider, Value: ProviderName},
	}
	if ext.Name != "" {
		claims = append(claims, entity.Claim{Type: entity.ClaimTypeDisplayName, Value: ext.Name})
	}

	return claims
}
