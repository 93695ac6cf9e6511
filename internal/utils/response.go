package utils

import (
	"time"

	"github.com/PrVille/json-mock-data-api-sub000/internal/types"
	"github.com/gofiber/fiber/v2"
)

// ErrorsResponse sends the standard validation/auth envelope:
// { errors: [{ type, value?, msg, path, location }, ...] }
func ErrorsResponse(c *fiber.Ctx, status int, errs []types.FieldError) error {
	return c.Status(status).JSON(fiber.Map{
		"errors": errs,
	})
}

// ErrorResponse sends a generic error response for unhandled failures
func ErrorResponse(c *fiber.Ctx, message string, status int) error {
	return c.Status(status).JSON(fiber.Map{
		"status":    status,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
	})
}

// NotFoundResponse sends a 404 not found response (unknown routes)
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"status":    fiber.StatusNotFound,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
	})
}

// ErrorsEnvelope defines the schema for validation/auth error responses
type ErrorsEnvelope struct {
	Errors []types.FieldError `json:"errors"`
}
