package handlers

import "github.com/gofiber/fiber/v2"

// ok writes the standard success envelope.
func ok(c *fiber.Ctx, status int, data fiber.Map) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}
