package handlers

import (
	"errors"

	apperrors "yt-study/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ErrorHandler maps application errors to their HTTP status and a JSON body.
// Every pipeline failure surfaces here; none are swallowed.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var appErr *apperrors.AppError
	var fiberErr *fiber.Error
	if errors.As(err, &appErr) {
		code = appErr.Code
		message = appErr.Message
	} else if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	logrus.WithFields(logrus.Fields{
		"request_id": c.GetRespHeader("X-Request-ID"),
		"path":       c.Path(),
		"method":     c.Method(),
		"status":     code,
		"error":      err,
	}).Error("Request error")

	return c.Status(code).JSON(fiber.Map{
		"error":      message,
		"request_id": c.GetRespHeader("X-Request-ID"),
	})
}
