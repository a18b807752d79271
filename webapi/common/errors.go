// Package common holds request binding, validation and error translation
// shared by every HTTP handler.
package common

import (
	"errors"
	"log/slog"

	"github.com/amirasaad/user-management/pkg/domain/user"
	"github.com/gofiber/fiber/v2"
)

// MalformedInputMessage is the body sent for an undecodable request.
const MalformedInputMessage = "Invalid JSON format"

// ErrorHandler translates errors returned by handlers into responses.
// The order of the checks matters: a wrapped not-found always wins.
func ErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.With(
			"method", c.Method(),
			"path", c.OriginalURL(),
		)

		var (
			notFound  *user.NotFoundError
			malformed *MalformedInputError
			invalid   ValidationErrors
			fiberErr  *fiber.Error
		)
		switch {
		case errors.Is(err, user.ErrUserNotFound):
			log.Warn("Resource not found", "error", err)
			msg := err.Error()
			if errors.As(err, &notFound) {
				msg = notFound.Error()
			}
			return sendText(c, fiber.StatusNotFound, msg)
		case errors.As(err, &malformed):
			log.Warn("Malformed request body", "error", err)
			return sendText(c, fiber.StatusBadRequest, MalformedInputMessage)
		case errors.As(err, &invalid):
			log.Warn("Validation failed", "error", err)
			return c.Status(fiber.StatusBadRequest).JSON(invalid)
		case errors.As(err, &fiberErr):
			log.Warn("Request rejected", "status", fiberErr.Code, "error", err)
			return sendText(c, fiberErr.Code, fiberErr.Message)
		default:
			log.Error("Unexpected error", "error", err)
			return sendText(c, fiber.StatusInternalServerError, "An error occurred: "+err.Error())
		}
	}
}

func sendText(c *fiber.Ctx, status int, msg string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(status).SendString(msg)
}
