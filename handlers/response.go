package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/pkg/apperror"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/pkg/logger"
)

// respondError maps service errors onto HTTP statuses.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		appErr = apperror.Wrap(err, apperror.ErrCodeInternalError, "internal server error")
	}

	switch appErr.Code {
	case apperror.ErrCodeValidation:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": appErr.Message,
		})
	case apperror.ErrCodeNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": appErr.Message,
		})
	case apperror.ErrCodeUnauthorized:
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": appErr.Message,
		})
	}

	logger.Error(appErr.Message, "path", c.Path(), "error", appErr.Err)
	body := fiber.Map{
		"success": false,
		"message": appErr.Message,
	}
	if appErr.Err != nil {
		body["error"] = appErr.Err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Invalid request body",
	})
}
