package policy

import (
	"testing"
	"time"

	"usman/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireClaimValue(t *testing.T) {
	req := RequireClaimValue(entity.ClaimTypeCity, "Bishkek", "Osh")
	now := time.Now()

	tests := []struct {
		name    string
		claims  entity.Claims
		allowed bool
	}{
		{
			name:    "matching value",
			claims:  entity.Claims{{Type: entity.ClaimTypeCity, Value: "Bishkek"}},
			allowed: true,
		},
		{
			name:    "second accepted value",
			claims:  entity.Claims{{Type: entity.ClaimTypeCity, Value: "Osh"}},
			allowed: true,
		},
		{
			name:    "wrong value",
			claims:  entity.Claims{{Type: entity.ClaimTypeCity, Value: "Almaty"}},
			allowed: false,
		},
		{
			name:    "missing claim",
			claims:  entity.Claims{{Type: entity.ClaimTypeRole, Value: "member"}},
			allowed: false,
		},
		{
			name:    "empty claim set",
			claims:  nil,
			allowed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := req.Evaluate(tt.claims, now)

			assert.Equal(t, tt.allowed, decision.Allowed)
			if !tt.allowed {
				assert.NotEmpty(t, decision.Reason)
			}
		})
	}
}

func TestRequireClaim_PresenceOnly(t *testing.T) {
	req := RequireClaim(entity.ClaimTypeViolence)
	now := time.Now()

	// Presence is enough, even with an empty value.
	decision := req.Evaluate(entity.Claims{{Type: entity.ClaimTypeViolence}}, now)
	assert.True(t, decision.Allowed)

	decision = req.Evaluate(entity.Claims{{Type: entity.ClaimTypeCity, Value: "Bishkek"}}, now)
	assert.False(t, decision.Allowed)
}

func TestRequireUnexpiredDate(t *testing.T) {
	req := RequireUnexpiredDate(entity.ClaimTypeExchangeExpiry)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		allowed bool
	}{
		{name: "future date", value: "2027-01-01", allowed: true},
		{name: "past date", value: "2026-03-01", allowed: false},
		{name: "unparsable value", value: "next tuesday", allowed: false},
		{name: "empty value", value: "", allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := entity.Claims{{Type: entity.ClaimTypeExchangeExpiry, Value: tt.value}}

			decision := req.Evaluate(claims, now)

			assert.Equal(t, tt.allowed, decision.Allowed)
		})
	}
}

func TestRequireUnexpiredDate_MissingClaimDenies(t *testing.T) {
	req := RequireUnexpiredDate(entity.ClaimTypeExchangeExpiry)

	decision := req.Evaluate(nil, time.Now())

	assert.False(t, decision.Allowed)
	assert.Contains(t, decision.Reason, "missing required claim")
}

func TestPolicy_AllRequirementsMustAllow(t *testing.T) {
	registry := NewRegistry()
	err := registry.Register("strict",
		RequireClaimValue(entity.ClaimTypeCity, "Bishkek"),
		RequireClaim(entity.ClaimTypeViolence),
	)
	require.NoError(t, err)

	pol := registry.MustResolve("strict")
	now := time.Now()

	decision := pol.Evaluate(entity.Claims{
		{Type: entity.ClaimTypeCity, Value: "Bishkek"},
		{Type: entity.ClaimTypeViolence},
	}, now)
	assert.True(t, decision.Allowed)

	// One satisfied requirement is not enough.
	decision = pol.Evaluate(entity.Claims{
		{Type: entity.ClaimTypeCity, Value: "Bishkek"},
	}, now)
	assert.False(t, decision.Allowed)
	assert.Contains(t, decision.Reason, entity.ClaimTypeViolence)
}

func TestRegistry_Register_Validation(t *testing.T) {
	registry := NewRegistry()

	err := registry.Register("", RequireClaim(entity.ClaimTypeViolence))
	require.Error(t, err)

	err = registry.Register("empty")
	require.Error(t, err)

	err = registry.Register("dup", RequireClaim(entity.ClaimTypeViolence))
	require.NoError(t, err)
	err = registry.Register("dup", RequireClaim(entity.ClaimTypeViolence))
	require.Error(t, err)
}

func TestRegistry_Resolve_UnknownName(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Resolve("nope")
	require.Error(t, err)

	assert.Panics(t, func() {
		registry.MustResolve("nope")
	})
}

func TestDefaultRegistry_BuiltinPolicies(t *testing.T) {
	registry, err := NewDefaultRegistry()
	require.NoError(t, err)

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	decision, err := registry.Evaluate(PolicyBishkek,
		entity.Claims{{Type: entity.ClaimTypeCity, Value: "Bishkek"}}, now)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)

	decision, err = registry.Evaluate(PolicyBishkek,
		entity.Claims{{Type: entity.ClaimTypeCity, Value: "Osh"}}, now)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)

	decision, err = registry.Evaluate(PolicyViolence,
		entity.Claims{{Type: entity.ClaimTypeViolence, Value: "granted"}}, now)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)

	decision, err = registry.Evaluate(PolicyExchange,
		entity.Claims{{Type: entity.ClaimTypeExchangeExpiry, Value: "2027-01-01"}}, now)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)

	decision, err = registry.Evaluate(PolicyExchange,
		entity.Claims{{Type: entity.ClaimTypeExchangeExpiry, Value: "2025-01-01"}}, now)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
}
