package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/book-purple/internal/api/http/handlers"
	"github.com/spec-kit/book-purple/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Authenticator *auth.Authenticator
	Login         *handlers.LoginHandler
	Logout        *handlers.LogoutHandler
	Refresh       *handlers.RefreshHandler
	Users         *handlers.UsersHandler
	Health        *handlers.HealthHandler
	// Policy defaults to DefaultPolicy.
	Policy Policy
}

// RegisterRoutes wires the auth filters in order, then the route policy, then the routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	policy := cfg.Policy
	if policy == nil {
		policy = DefaultPolicy
	}

	app.Use(cfg.Authenticator.Handle)
	app.Use(cfg.Login.Handle)
	app.Use(cfg.Logout.Handle)
	app.Use(RequirePolicy(policy))

	health := app.Group("/health")
	health.Get("/live", cfg.Health.Live)
	health.Get("/ready", cfg.Health.Ready)
	health.Get("/metrics", cfg.Health.Metrics)

	v1 := app.Group("/api/v1")
	v1.Post("/refresh", cfg.Refresh.Refresh)
	v1.Get("/users/me", cfg.Users.Me)
	v1.Get("/users/:userId", cfg.Users.Get)
}
