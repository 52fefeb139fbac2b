package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/musicalcamp/musicalcamp-server/internal/domain"
	"github.com/musicalcamp/musicalcamp-server/internal/middleware"
	"github.com/musicalcamp/musicalcamp-server/internal/service"
)

// PaymentHandler handles payment intents and payment records.
type PaymentHandler struct {
	payments *service.PaymentService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(payments *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// Register sets up payment routes.
func (h *PaymentHandler) Register(router fiber.Router, g middleware.Gates) {
	router.Post("/create-payment-intent", g.Authenticate, h.CreateIntent)
	router.Get("/payments", g.Member, g.MemberAdmin, h.List)
	router.Post("/payments", g.Authenticate, h.Record)
}

// CreateIntent opens a card payment for the posted price.
func (h *PaymentHandler) CreateIntent(c fiber.Ctx) error {
	var body struct {
		Price float64 `json:"price"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid price")
	}

	intent, err := h.payments.CreateIntent(c.Context(), body.Price)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"clientSecret": intent.ClientSecret})
}

// List returns every payment, newest first.
func (h *PaymentHandler) List(c fiber.Ctx) error {
	payments, err := h.payments.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(payments)
}

// Record stores a completed payment.
func (h *PaymentHandler) Record(c fiber.Ctx) error {
	var payment domain.Payment
	if err := c.Bind().JSON(&payment); err != nil {
		return badRequest(c, "invalid body")
	}
	res, err := h.payments.Record(c.Context(), &payment, middleware.GetPrincipal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}
