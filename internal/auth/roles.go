package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/user-management/internal/domain"
	apperrors "github.com/spec-kit/user-management/pkg/util"
)

// RequireRole ensures the authenticated principal holds the expected role.
// It always runs after AuthMiddleware.Handle, so a missing principal means
// authentication never happened and is reported as 401, not 403.
func RequireRole(expected domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if principal.Role != expected {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}

// RequireAuthenticated ensures a principal is present without constraining
// its role.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}
