package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/musicalcamp/musicalcamp-server/internal/middleware"
	"github.com/musicalcamp/musicalcamp-server/internal/port"
)

const (
	defaultAuditPage = 100
	maxAuditPage     = 500
)

// AuditHandler serves the request audit trail to admins.
type AuditHandler struct {
	store port.AuditStore
}

// NewAuditHandler creates a new audit handler.
func NewAuditHandler(store port.AuditStore) *AuditHandler {
	return &AuditHandler{store: store}
}

// Register mounts /audit/logs behind the admin gate.
func (h *AuditHandler) Register(router fiber.Router, g middleware.Gates) {
	router.Get("/audit/logs", g.Authenticate, g.Admin, h.ListLogs)
}

// ListLogs returns the newest audit records, optionally filtered by action.
func (h *AuditHandler) ListLogs(c fiber.Ctx) error {
	limit := defaultAuditPage
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return badRequest(c, "limit must be a positive integer")
		}
		limit = min(n, maxAuditPage)
	}

	logs, err := h.store.ListAuditLogs(c.Context(), limit, c.Query("action"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"logs": logs, "count": len(logs)})
}
