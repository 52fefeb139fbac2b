package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/musicalcamp/musicalcamp-server/internal/domain"
	"github.com/musicalcamp/musicalcamp-server/internal/middleware"
	"github.com/musicalcamp/musicalcamp-server/internal/service"
)

// UserHandler handles user registration, listing and role endpoints.
type UserHandler struct {
	users *service.UserService
	roles *service.RoleService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(users *service.UserService, roles *service.RoleService) *UserHandler {
	return &UserHandler{users: users, roles: roles}
}

// Register sets up user and role routes.
func (h *UserHandler) Register(router fiber.Router, g middleware.Gates) {
	router.Get("/users", g.Member, g.MemberAdmin, h.List)
	router.Post("/users", h.Create)
	router.Patch("/users/admin/:id", g.Authenticate, g.Admin, h.MakeAdmin)
	router.Patch("/users/instructor/:id", g.Authenticate, g.Admin, h.MakeInstructor)
	router.Delete("/users/:id", g.Authenticate, g.Admin, h.Delete)

	router.Get("/admin/:email", g.Authenticate, h.IsAdmin)
	router.Get("/instructor/:email", g.Authenticate, h.IsInstructor)
	router.Get("/instructors", h.Instructors)
}

// List returns every user.
func (h *UserHandler) List(c fiber.Ctx) error {
	users, err := h.users.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// Create registers a user unless the email is already taken.
func (h *UserHandler) Create(c fiber.Ctx) error {
	var user domain.User
	if err := c.Bind().JSON(&user); err != nil {
		return badRequest(c, "invalid body")
	}
	if user.Email == "" {
		return badRequest(c, "email is required")
	}

	res, created, err := h.users.Register(c.Context(), &user)
	if err != nil {
		return respondError(c, err)
	}
	if !created {
		return c.JSON(fiber.Map{"message": "user already existing"})
	}
	return c.JSON(res)
}

// MakeAdmin grants the admin role.
func (h *UserHandler) MakeAdmin(c fiber.Ctx) error {
	return h.assign(c, domain.RoleAdmin)
}

// MakeInstructor grants the instructor role.
func (h *UserHandler) MakeInstructor(c fiber.Ctx) error {
	return h.assign(c, domain.RoleInstructor)
}

func (h *UserHandler) assign(c fiber.Ctx, role domain.Role) error {
	res, err := h.roles.AssignRole(c.Context(), c.Params("id"), role)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Delete removes a user.
func (h *UserHandler) Delete(c fiber.Ctx) error {
	res, err := h.users.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// IsAdmin answers whether the caller's own account is an admin.
func (h *UserHandler) IsAdmin(c fiber.Ctx) error {
	ok, err := h.roles.IsAdmin(c.Context(), middleware.GetPrincipal(c), c.Params("email"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"admin": ok})
}

// IsInstructor answers whether the caller's own account is an instructor.
func (h *UserHandler) IsInstructor(c fiber.Ctx) error {
	ok, err := h.roles.IsInstructor(c.Context(), middleware.GetPrincipal(c), c.Params("email"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"instructor": ok})
}

// Instructors lists every instructor.
func (h *UserHandler) Instructors(c fiber.Ctx) error {
	users, err := h.users.Instructors(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}
