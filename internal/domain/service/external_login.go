package service

import (
	"context"

	"usman/internal/domain/entity"
)

// ExternalIdentity is the verified identity asserted by a federated login
// provider (Google, etc.).
type ExternalIdentity struct {
	Provider      string // The provider name, e.g. "google".
	Subject       string // The user's unique ID at the provider.
	Email         string
	EmailVerified bool
	Name          string
	PictureURL    string
}

// ExternalLoginProvider is a federated login variant. Each provider verifies
// its own token format and maps the external identity onto session claims;
// the core never branches on a concrete provider.
type ExternalLoginProvider interface {
	// Name returns the provider name used to select it at sign-in.
	Name() string

	// VerifyToken verifies a provider-issued identity token and returns the
	// asserted identity.
	VerifyToken(ctx context.Context, token string) (*ExternalIdentity, error)

	// ProduceClaims derives session claims from the verified external identity.
	ProduceClaims(ext *ExternalIdentity) entity.Claims
}
