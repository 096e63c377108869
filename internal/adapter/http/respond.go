package http

import (
	"github.com/gofiber/fiber/v2"
)

// All responses share one envelope: {success, data?} on the happy path and
// {success:false, error, code} on failure, matching what the web client expects.

func ok(c *fiber.Ctx, status int, data fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range data {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}

func fail(c *fiber.Ctx, status int, message, code string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
		"code":    code,
	})
}

func failValidation(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   "Validation failed",
		"code":    "VALIDATION_ERROR",
		"details": err.Error(),
	})
}
