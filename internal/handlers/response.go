package handlers

import (
	"krishiseva/internal/apperror"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// fail writes the error envelope for err. Internal failures are logged and
// answered with fallback so no internal detail reaches the client.
func fail(c *fiber.Ctx, log *zap.Logger, err error, fallback string) error {
	kind := apperror.KindOf(err)
	status := apperror.HTTPStatus(kind)
	if status >= fiber.StatusInternalServerError {
		log.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   apperror.PublicMessage(err, fallback),
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func invalidBody(c *fiber.Ctx) error {
	return badRequest(c, "Invalid request body")
}
