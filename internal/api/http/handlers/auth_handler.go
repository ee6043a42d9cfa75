package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/user-management/internal/api/dto"
	"github.com/spec-kit/user-management/internal/auth"
	"github.com/spec-kit/user-management/internal/service"
	apperrors "github.com/spec-kit/user-management/pkg/util"
)

// AuthHandler exposes signup, login and current-user endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	user, token, exp, err := h.auth.Signup(c.UserContext(), req.Email, req.Password, req.FullName)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    dto.AuthResponse{Token: token, ExpiresAt: exp, User: dto.NewUserView(user)},
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	user, token, exp, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.AuthResponse{Token: token, ExpiresAt: exp, User: dto.NewUserView(user)},
	})
}

// Me handles GET /api/auth/me. The user view reflects the live record, not
// the claims baked into the token.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, exists := auth.PrincipalFromContext(c)
	if !exists {
		return apperrors.NewUnauthorized("authentication required")
	}

	user, err := h.auth.CurrentUser(c.UserContext(), principal.User.ID)
	if err != nil {
		return err
	}

	return ok(c, http.StatusOK, fiber.Map{
		"user": dto.NewUserView(user),
	})
}
