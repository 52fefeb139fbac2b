package middleware

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/musicalcamp/musicalcamp-server/internal/domain"
	"github.com/musicalcamp/musicalcamp-server/internal/port"
)

// RoleChecker reports whether the account registered under email holds role.
type RoleChecker interface {
	HasRole(ctx context.Context, email string, role domain.Role) (bool, error)
}

// RequireRole admits only callers whose own user record holds role.
// It must run after JWTMiddleware.
func RequireRole(checker RoleChecker, role domain.Role) fiber.Handler {
	return func(c fiber.Ctx) error {
		p := GetPrincipal(c)
		if p == nil || p.Email == "" {
			return unauthorized(c)
		}

		ok, err := checker.HasRole(c.Context(), p.Email, role)
		if err != nil {
			slog.Error("role lookup failed", "email", p.Email, "role", role, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "role lookup failed"})
		}
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":   true,
				"message": port.ErrForbidden.Error(),
			})
		}
		return c.Next()
	}
}

// Gates bundles the per-route access checks. Admin and MemberAdmin only make
// sense chained after Authenticate and Member respectively.
type Gates struct {
	// Authenticate verifies the bearer token.
	Authenticate fiber.Handler
	// Admin requires the authenticated caller to be an admin.
	Admin fiber.Handler

	// Member and MemberAdmin gate the endpoints that are open unless strict mode is on.
	Member      fiber.Handler
	MemberAdmin fiber.Handler
}

// NewGates builds the gate set. With strict set, the otherwise open endpoints
// require a token (and the admin role where they manage other users' data).
func NewGates(verifier TokenVerifier, checker RoleChecker, strict bool) Gates {
	g := Gates{
		Authenticate: JWTMiddleware(verifier),
		Admin:        RequireRole(checker, domain.RoleAdmin),
		Member:       Passthrough,
		MemberAdmin:  Passthrough,
	}
	if strict {
		g.Member = g.Authenticate
		g.MemberAdmin = g.Admin
	}
	return g
}
