package handler

import (
	"net/http"

	"usman/internal/delivery/http/middleware"
	"usman/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// PolicyHandler serves the policy demonstration endpoints. The endpoints carry
// no data of their own; reaching one proves the guarding policy allowed the
// caller's claim set.
type PolicyHandler struct{}

// NewPolicyHandler creates a new PolicyHandler instance
func NewPolicyHandler() *PolicyHandler {
	return &PolicyHandler{}
}

// Granted responds when the guarding policy allowed the request.
func (h *PolicyHandler) Granted(policyName string) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, _ := middleware.ClaimsFromContext(c)

		return response.Success(c, http.StatusOK, map[string]any{
			"policy": policyName,
			"claims": claims,
		}, "Access granted by policy")
	}
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
