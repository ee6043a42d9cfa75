package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/user-management/internal/persistence"
)

// HealthHandler responds to health probes.
type HealthHandler struct {
	serviceName string
	version     string
	postgres    *persistence.Postgres
	redis       *persistence.Redis
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, postgres *persistence.Postgres, redis *persistence.Redis) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, postgres: postgres, redis: redis}
}

// Check handles GET /api/health, reporting dependency status.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	deps := fiber.Map{}
	if err := h.postgres.Ping(ctx); err != nil {
		deps["postgres"] = err.Error()
	} else {
		deps["postgres"] = "ok"
	}
	if err := h.redis.Ping(ctx); err != nil {
		deps["redis"] = err.Error()
	} else {
		deps["redis"] = "ok"
	}

	return c.JSON(fiber.Map{
		"status":       "OK",
		"service":      h.serviceName,
		"version":      h.version,
		"dependencies": deps,
	})
}
