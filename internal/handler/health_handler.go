package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
)

const pingTimeout = 2 * time.Second

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness banner and dependency health.
type HealthHandler struct {
	appName string
	db      Pinger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(appName string, db Pinger) *HealthHandler {
	return &HealthHandler{appName: appName, db: db}
}

// Register sets up health routes.
func (h *HealthHandler) Register(router fiber.Router) {
	router.Get("/", h.Root)
	router.Get("/health", h.Health)
}

// Root answers with the service name.
func (h *HealthHandler) Root(c fiber.Ctx) error {
	return c.SendString(h.appName)
}

// Health pings the database.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":   "degraded",
			"database": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "ok", "database": "ok"})
}
