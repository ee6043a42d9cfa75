package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/user-management/internal/api/dto"
	"github.com/spec-kit/user-management/internal/auth"
	"github.com/spec-kit/user-management/internal/service"
	apperrors "github.com/spec-kit/user-management/pkg/util"
)

// UsersHandler exposes administration and profile self-service endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// List handles GET /api/users (admin only).
func (h *UsersHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	users, pagination, err := h.users.List(c.UserContext(), page, limit)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.UserListResponse{Users: dto.NewUserViews(users), Pagination: pagination},
	})
}

// Activate handles PUT /api/users/:id/activate (admin only).
func (h *UsersHandler) Activate(c *fiber.Ctx) error {
	return h.setStatus(c, true)
}

// Deactivate handles PUT /api/users/:id/deactivate (admin only).
func (h *UsersHandler) Deactivate(c *fiber.Ctx) error {
	return h.setStatus(c, false)
}

func (h *UsersHandler) setStatus(c *fiber.Ctx, activate bool) error {
	principal, exists := auth.PrincipalFromContext(c)
	if !exists {
		return apperrors.NewUnauthorized("authentication required")
	}

	userID := c.Params("id")
	if userID == "" {
		return apperrors.NewValidationError("user id required", nil)
	}

	transition := h.users.Deactivate
	if activate {
		transition = h.users.Activate
	}

	updated, err := transition(c.UserContext(), userID, principal.User.ID)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, fiber.Map{"user": dto.NewUserView(updated)})
}

// UpdateProfile handles PUT /api/users/profile (self-service).
func (h *UsersHandler) UpdateProfile(c *fiber.Ctx) error {
	principal, exists := auth.PrincipalFromContext(c)
	if !exists {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	user, err := h.users.UpdateProfile(c.UserContext(), principal.User.ID, service.UpdateProfileParams{
		FullName: req.FullName,
		Email:    req.Email,
	})
	if err != nil {
		return err
	}

	return ok(c, http.StatusOK, fiber.Map{"user": dto.NewUserView(user)})
}

// ChangePassword handles PUT /api/users/change-password (self-service).
func (h *UsersHandler) ChangePassword(c *fiber.Ctx) error {
	principal, exists := auth.PrincipalFromContext(c)
	if !exists {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if err := h.users.ChangePassword(c.UserContext(), principal.User.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"success": true})
}
