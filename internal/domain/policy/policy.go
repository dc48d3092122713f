// Package policy implements named authorization policies evaluated against a
// claim set. Policies are registered once at process start; route wiring
// resolves them by name, so an unknown policy name fails at startup rather
// than turning into a runtime deny.
package policy

import (
	"time"

	"usman/internal/domain/entity"
)

// Decision is the outcome of evaluating a requirement against a claim set.
// A denied decision always carries a structured reason.
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// Allow returns an allowing decision.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny returns a denying decision with the given reason.
func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Requirement is a single rule evaluated against a claim set. The resolved
// "now" instant is passed in so time-bound requirements are deterministic
// under test.
type Requirement interface {
	Evaluate(claims entity.Claims, now time.Time) Decision
}

// claimValueRequirement allows iff the claim set contains a claim with the
// configured type and one of the configured values.
type claimValueRequirement struct {
	claimType string
	values    []string
}

// RequireClaimValue builds a requirement that the claim set contains a claim
// of claimType whose value equals one of the given values.
func RequireClaimValue(claimType string, values ...string) Requirement {
	return &claimValueRequirement{claimType: claimType, values: values}
}

func (r *claimValueRequirement) Evaluate(claims entity.Claims, _ time.Time) Decision {
	for _, v := range r.values {
		if claims.Contains(r.claimType, v) {
			return Allow()
		}
	}

	return Deny("missing required claim " + r.claimType + " with an accepted value")
}

// claimPresenceRequirement allows iff the claim set contains any claim of the
// configured type, regardless of value.
type claimPresenceRequirement struct {
	claimType string
}

// RequireClaim builds a requirement that the claim set contains a claim of
// claimType with any value.
func RequireClaim(claimType string) Requirement {
	return &claimPresenceRequirement{claimType: claimType}
}

func (r *claimPresenceRequirement) Evaluate(claims entity.Claims, _ time.Time) Decision {
	if claims.HasType(r.claimType) {
		return Allow()
	}

	return Deny("missing required claim " + r.claimType)
}

// predicateRequirement delegates to an arbitrary evaluation function.
type predicateRequirement struct {
	fn func(claims entity.Claims, now time.Time) Decision
}

// RequireFunc builds a custom requirement from an evaluation function.
// The function must resolve missing or unparsable claim values to a deny
// decision, never panic.
func RequireFunc(fn func(claims entity.Claims, now time.Time) Decision) Requirement {
	return &predicateRequirement{fn: fn}
}

func (r *predicateRequirement) Evaluate(claims entity.Claims, now time.Time) Decision {
	return r.fn(claims, now)
}

// Policy is a named conjunction of requirements; every requirement must allow
// for the policy to allow. The first denying requirement decides the reason.
type Policy struct {
	name         string
	requirements []Requirement
}

// Name returns the policy's registered name.
func (p *Policy) Name() string {
	return p.name
}

// Evaluate runs all requirements against the claim set at the given instant.
func (p *Policy) Evaluate(claims entity.Claims, now time.Time) Decision {
	for _, req := range p.requirements {
		if decision := req.Evaluate(claims, now); !decision.Allowed {
			return decision
		}
	}

	return Allow()
}
