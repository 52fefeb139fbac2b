package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/musicalcamp/musicalcamp-server/internal/port"
)

// respondError maps a service or store error onto an HTTP status.
func respondError(c fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, port.ErrInvalidID),
		errors.Is(err, port.ErrInvalidRole),
		errors.Is(err, port.ErrInvalidAmount):
		status = fiber.StatusBadRequest
	case errors.Is(err, port.ErrUserNotFound),
		errors.Is(err, port.ErrClassNotFound),
		errors.Is(err, port.ErrSelectionNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, port.ErrPaymentsDisabled):
		status = fiber.StatusServiceUnavailable
	}

	if status == fiber.StatusInternalServerError {
		slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
