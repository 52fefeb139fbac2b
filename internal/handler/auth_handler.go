package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/musicalcamp/musicalcamp-server/internal/service"
)

// AuthHandler handles access token issuance.
type AuthHandler struct {
	authService *service.AuthService
	limiter     fiber.Handler
}

// NewAuthHandler creates a new auth handler. limiter guards token issuance.
func NewAuthHandler(authService *service.AuthService, limiter fiber.Handler) *AuthHandler {
	return &AuthHandler{authService: authService, limiter: limiter}
}

// Register sets up auth routes.
func (h *AuthHandler) Register(router fiber.Router) {
	router.Post("/jwt", h.limiter, h.IssueToken)
}

// IssueToken signs the posted JSON object into an access token.
func (h *AuthHandler) IssueToken(c fiber.Ctx) error {
	var claims map[string]any
	if err := c.Bind().JSON(&claims); err != nil || claims == nil {
		return badRequest(c, "invalid request")
	}

	token, err := h.authService.IssueToken(claims)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"token": token})
}
