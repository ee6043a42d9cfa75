package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/user-management/internal/api/http/handlers"
	"github.com/spec-kit/user-management/internal/auth"
	"github.com/spec-kit/user-management/internal/domain"
	apperrors "github.com/spec-kit/user-management/pkg/util"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Authentication always precedes role
// checks, so an unauthenticated caller gets 401 before any 403.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	api := app.Group("/api")

	api.Get("/health", cfg.Health.Check)

	authGroup := api.Group("/auth")
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	users := api.Group("/users", cfg.AuthMiddleware.Handle)
	users.Get("", auth.RequireRole(domain.RoleAdmin), cfg.Users.List)
	// Fixed paths are registered before the :id routes.
	users.Put("/profile", cfg.Users.UpdateProfile)
	users.Put("/change-password", cfg.Users.ChangePassword)
	users.Put("/:id/activate", auth.RequireRole(domain.RoleAdmin), cfg.Users.Activate)
	users.Put("/:id/deactivate", auth.RequireRole(domain.RoleAdmin), cfg.Users.Deactivate)

	// Unmatched paths get the JSON envelope instead of Fiber's plain-text 404.
	app.Use(func(c *fiber.Ctx) error {
		return apperrors.NewNotFound("route")
	})
}
