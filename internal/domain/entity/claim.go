// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Well-known claim types used by the built-in authorization policies.
const (
	// ClaimTypeCity carries the user's city of residence.
	ClaimTypeCity = "city"
	// ClaimTypeViolence marks accounts cleared for age-restricted content.
	ClaimTypeViolence = "violence"
	// ClaimTypeExchangeExpiry carries the expiry date of a currency-exchange
	// permission, formatted as 2006-01-02.
	ClaimTypeExchangeExpiry = "exchange-expiry"
	// ClaimTypeRole carries a role name assigned to the user.
	ClaimTypeRole = "role"
	// ClaimTypeLoginProvider names the federated provider that asserted the identity.
	ClaimTypeLoginProvider = "login-provider"
	// ClaimTypeDisplayName carries the user's display name as asserted by a
	// federated provider.
	ClaimTypeDisplayName = "display-name"
)

// Claim is a typed key/value fact about an identity. Claims are assembled at
// sign-in and on each authenticated request from the credential store and from
// pluggable claim providers; they are inputs to policy evaluation.
type Claim struct {
	Type  string `json:"type"`  // The claim type, e.g. "city".
	Value string `json:"value"` // The claim value, e.g. "Bishkek". May be empty for presence-only claims.
}

// Claims is a claim set attached to a single identity.
type Claims []Claim

// HasType reports whether the set contains any claim of the given type,
// regardless of value.
func (cs Claims) HasType(claimType string) bool {
	for _, c := range cs {
		if c.Type == claimType {
			return true
		}
	}

	return false
}

// Contains reports whether the set contains a claim with the given type AND value.
func (cs Claims) Contains(claimType, value string) bool {
	for _, c := range cs {
		if c.Type == claimType && c.Value == value {
			return true
		}
	}

	return false
}

// First returns the value of the first claim of the given type.
// The second return value reports whether such a claim exists.
func (cs Claims) First(claimType string) (string, bool) {
	for _, c := range cs {
		if c.Type == claimType {
			return c.Value, true
		}
	}

	return "", false
}

// ValuesOfType collects all values of claims with the given type.
func (cs Claims) ValuesOfType(claimType string) []string {
	var values []string
	for _, c := range cs {
		if c.Type == claimType {
			values = append(values, c.Value)
		}
	}

	return values
}

// StoredClaim is a claim persisted for a user by the credential store,
// as opposed to claims derived on the fly by claim providers.
type StoredClaim struct {
	ID        uuid.UUID // The unique ID for this claim record.
	UserID    uuid.UUID // Links this claim to the User it belongs to.
	Type      string    // The claim type.
	Value     string    // The claim value.
	CreatedAt time.Time // Timestamp of when this claim was granted.
}
