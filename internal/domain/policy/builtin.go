package policy

import (
	"time"

	"usman/internal/domain/entity"
)

// Names of the built-in policies.
const (
	// PolicyBishkek grants access to residents of Bishkek.
	PolicyBishkek = "bishkek"
	// PolicyViolence grants access to accounts cleared for age-restricted content.
	PolicyViolence = "violence"
	// PolicyExchange grants access while the exchange permission has not expired.
	PolicyExchange = "exchange"
)

// expiryDateLayout is the date format of expiry-bearing claim values.
const expiryDateLayout = "2006-01-02"

// RequireUnexpiredDate builds a requirement that the claim set contains a
// claim of claimType whose value, parsed as a 2006-01-02 date, has not passed.
// A missing or unparsable value resolves to deny, not to an error.
func RequireUnexpiredDate(claimType string) Requirement {
	return RequireFunc(func(claims entity.Claims, now time.Time) Decision {
		value, ok := claims.First(claimType)
		if !ok {
			return Deny("missing required claim " + claimType)
		}

		expiry, err := time.Parse(expiryDateLayout, value)
		if err != nil {
			return Deny("claim " + claimType + " has an unparsable date value")
		}
		if expiry.Before(now) {
			return Deny("claim " + claimType + " expired on " + value)
		}

		return Allow()
	})
}

// NewDefaultRegistry builds the registry with the application's built-in
// policies. All policy names used by the router must be registered here.
func NewDefaultRegistry() (*Registry, error) {
	registry := NewRegistry()

	if err := registry.Register(PolicyBishkek,
		RequireClaimValue(entity.ClaimTypeCity, "Bishkek")); err != nil {
		return nil, err
	}
	if err := registry.Register(PolicyViolence,
		RequireClaim(entity.ClaimTypeViolence)); err != nil {
		return nil, err
	}
	if err := registry.Register(PolicyExchange,
		RequireUnexpiredDate(entity.ClaimTypeExchangeExpiry)); err != nil {
		return nil, err
	}

	return registry, nil
}
