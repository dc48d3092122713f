// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"usman/config"
	"usman/internal/delivery/http/middleware"
	"usman/internal/delivery/http/router/handler"
	"usman/internal/domain/policy"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config           *config.Config
	AuthHandler      *handler.AuthHandler
	MemberHandler    *handler.MemberHandler
	PolicyHandler    *handler.PolicyHandler
	AuthMiddleware   *middleware.AuthMiddleware
	PolicyMiddleware *middleware.PolicyMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg              *config.Config
	authHandler      *handler.AuthHandler
	memberHandler    *handler.MemberHandler
	policyHandler    *handler.PolicyHandler
	authMiddleware   *middleware.AuthMiddleware
	policyMiddleware *middleware.PolicyMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:              params.Config,
		authHandler:      params.AuthHandler,
		memberHandler:    params.MemberHandler,
		policyHandler:    params.PolicyHandler,
		authMiddleware:   params.AuthMiddleware,
		policyMiddleware: params.PolicyMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Policy names are resolved here, while wiring; an unknown name panics at
// startup instead of surfacing as a runtime deny.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session lifecycle routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/signin", r.authHandler.SignIn)
		authGroup.POST("/signin/google", r.authHandler.SignInGoogle)
		authGroup.POST("/signout", r.authHandler.SignOut)
		authGroup.POST("/revoke-all", r.authHandler.RevokeAllSessions, r.authMiddleware.Authenticate)
	}

	// Member routes that require authentication
	memberGroup := e.Group("/member")
	memberGroup.Use(r.authMiddleware.Authenticate)
	{
		memberGroup.GET("/profile", r.memberHandler.GetProfile)
		memberGroup.PUT("/profile", r.memberHandler.UpdateProfile)
		memberGroup.POST("/password", r.memberHandler.ChangePassword)
		memberGroup.GET("/roles", r.memberHandler.GetRoles)
	}

	// Policy demonstration routes, each guarded by one built-in policy.
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		restrictedGroup := e.Group("/restricted")
		restrictedGroup.Use(r.authMiddleware.Authenticate)
		{
			restrictedGroup.GET("/bishkek",
				r.policyHandler.Granted(policy.PolicyBishkek),
				r.policyMiddleware.Authorize(policy.PolicyBishkek))
			restrictedGroup.GET("/violence",
				r.policyHandler.Granted(policy.PolicyViolence),
				r.policyMiddleware.Authorize(policy.PolicyViolence))
			restrictedGroup.GET("/exchange",
				r.policyHandler.Granted(policy.PolicyExchange),
				r.policyMiddleware.Authorize(policy.PolicyExchange))
		}
	}
}
