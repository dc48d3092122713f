package middleware

import (
	"time"

	domainerrors "usman/internal/domain/errors"
	"usman/internal/domain/policy"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PolicyMiddleware authorizes requests by evaluating a named policy against
// the claim set assembled by Authenticate.
type PolicyMiddleware struct {
	registry *policy.Registry
}

// NewPolicyMiddleware is the constructor for PolicyMiddleware.
func NewPolicyMiddleware(registry *policy.Registry) *PolicyMiddleware {
	return &PolicyMiddleware{registry: registry}
}

// Authorize is a middleware factory guarding a route with the named policy.
// The policy is resolved while wiring routes, so a typo in a policy name
// panics at startup instead of denying every request at runtime.
// It must be used AFTER the Authenticate middleware.
func (m *PolicyMiddleware) Authorize(policyName string) echo.MiddlewareFunc {
	pol := m.registry.MustResolve(policyName)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFromContext(c)
			if !ok {
				return errors.WithStack(domainerrors.ErrForbidden.WrapMessage("claims missing from request context"))
			}

			decision := pol.Evaluate(claims, time.Now())
			if !decision.Allowed {
				return errors.WithStack(domainerrors.ErrPolicyDenied.WithDetails(decision.Reason))
			}

			return next(c)
		}
	}
}
