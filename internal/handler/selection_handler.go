package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/musicalcamp/musicalcamp-server/internal/domain"
	"github.com/musicalcamp/musicalcamp-server/internal/middleware"
	"github.com/musicalcamp/musicalcamp-server/internal/port"
)

// SelectionHandler handles the classes students pick and enroll in.
type SelectionHandler struct {
	store port.SelectionStore
}

// NewSelectionHandler creates a new selection handler.
func NewSelectionHandler(store port.SelectionStore) *SelectionHandler {
	return &SelectionHandler{store: store}
}

// Register sets up selection routes.
func (h *SelectionHandler) Register(router fiber.Router, g middleware.Gates) {
	router.Get("/selected/:email", g.Member, h.ListPending)
	router.Get("/selectedEnroll/:email", g.Member, h.ListEnrolled)
	router.Get("/select/:id", g.Member, h.Get)
	router.Post("/selected", g.Member, h.Create)
	router.Patch("/selectedpatch/:id", g.Member, h.MarkPaid)
	router.Delete("/selected/:id", g.Member, h.Delete)
}

// ListPending returns the unpaid selections of a student.
func (h *SelectionHandler) ListPending(c fiber.Ctx) error {
	return h.list(c, domain.PaymentPending)
}

// ListEnrolled returns the paid selections of a student.
func (h *SelectionHandler) ListEnrolled(c fiber.Ctx) error {
	return h.list(c, domain.PaymentDone)
}

func (h *SelectionHandler) list(c fiber.Ctx, payment string) error {
	sel, err := h.store.ListSelections(c.Context(), c.Params("email"), payment)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sel)
}

// Get returns one selection.
func (h *SelectionHandler) Get(c fiber.Ctx) error {
	sel, err := h.store.FindSelection(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sel)
}

// Create stores a new selection.
func (h *SelectionHandler) Create(c fiber.Ctx) error {
	var sel domain.Selection
	if err := c.Bind().JSON(&sel); err != nil {
		return badRequest(c, "invalid body")
	}
	res, err := h.store.InsertSelection(c.Context(), &sel)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// MarkPaid flags a selection as paid.
func (h *SelectionHandler) MarkPaid(c fiber.Ctx) error {
	var body struct {
		Seat domain.SeatCount `json:"seat"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid seat")
	}
	res, err := h.store.MarkSelectionPaid(c.Context(), c.Params("id"), int(body.Seat))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Delete removes a selection.
func (h *SelectionHandler) Delete(c fiber.Ctx) error {
	res, err := h.store.DeleteSelection(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}
