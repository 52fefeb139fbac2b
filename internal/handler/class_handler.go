package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/musicalcamp/musicalcamp-server/internal/domain"
	"github.com/musicalcamp/musicalcamp-server/internal/middleware"
	"github.com/musicalcamp/musicalcamp-server/internal/port"
)

// ClassHandler handles class listing and moderation.
type ClassHandler struct {
	store port.ClassStore
}

// NewClassHandler creates a new class handler.
func NewClassHandler(store port.ClassStore) *ClassHandler {
	return &ClassHandler{store: store}
}

// Register sets up class routes.
func (h *ClassHandler) Register(router fiber.Router, g middleware.Gates) {
	router.Get("/classes", h.ListApproved)
	router.Get("/classesmanage", g.Member, g.MemberAdmin, h.ListPending)
	router.Get("/classes/:email", g.Member, h.ListByInstructor)
	router.Post("/classes", g.Member, h.Create)
	router.Patch("/classesapprove/:id", g.Member, g.MemberAdmin, h.Approve)
	router.Patch("/classesdeny/:id", g.Member, g.MemberAdmin, h.Deny)
	router.Put("/class/:id", g.Member, h.UpdateSeats)
}

// ListApproved returns approved classes, fewest seats left first.
func (h *ClassHandler) ListApproved(c fiber.Ctx) error {
	return h.listByStatus(c, domain.ClassStatusApproved)
}

// ListPending returns classes awaiting moderation.
func (h *ClassHandler) ListPending(c fiber.Ctx) error {
	return h.listByStatus(c, domain.ClassStatusPending)
}

func (h *ClassHandler) listByStatus(c fiber.Ctx, status string) error {
	classes, err := h.store.ListClassesByStatus(c.Context(), status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(classes)
}

// ListByInstructor returns every class an instructor created.
func (h *ClassHandler) ListByInstructor(c fiber.Ctx) error {
	classes, err := h.store.ListClassesByInstructor(c.Context(), c.Params("email"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(classes)
}

// Create stores a new class listing.
func (h *ClassHandler) Create(c fiber.Ctx) error {
	var class domain.Class
	if err := c.Bind().JSON(&class); err != nil {
		return badRequest(c, "invalid body")
	}
	res, err := h.store.InsertClass(c.Context(), &class)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Approve publishes a class.
func (h *ClassHandler) Approve(c fiber.Ctx) error {
	return h.setStatus(c, domain.ClassStatusApproved)
}

// Deny rejects a class.
func (h *ClassHandler) Deny(c fiber.Ctx) error {
	return h.setStatus(c, domain.ClassStatusDenied)
}

func (h *ClassHandler) setStatus(c fiber.Ctx, status string) error {
	res, err := h.store.SetClassStatus(c.Context(), c.Params("id"), status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// UpdateSeats overwrites the available seat count.
func (h *ClassHandler) UpdateSeats(c fiber.Ctx) error {
	var body struct {
		Seat domain.SeatCount `json:"seat"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid seat")
	}
	res, err := h.store.SetClassSeats(c.Context(), c.Params("id"), int(body.Seat))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}
