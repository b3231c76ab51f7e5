package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"visorhr.com/internal/domain"
)

// respondError writes the shared error shape {success:false, message}.
func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// handleError maps a domain.AppError to its HTTP status; anything else is a
// 500 with the detail kept server-side.
func handleError(c *fiber.Ctx, err error) error {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		if appErr.Code >= fiber.StatusInternalServerError {
			log.Printf("Internal error on %s %s: %v", c.Method(), c.Path(), err)
		}
		return respondError(c, appErr.Code, appErr.Message)
	}

	log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return respondError(c, fiber.StatusInternalServerError, "Internal server error.")
}
