package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/musicalcamp/musicalcamp-server/internal/domain"
	"github.com/musicalcamp/musicalcamp-server/internal/port"
)

// UserService manages user registration and listing.
type UserService struct {
	store  port.UserStore
	admins map[string]string // normalized email -> configured email
}

// NewUserService creates a new user service. Accounts registered under one of
// adminEmails are created as admins.
func NewUserService(store port.UserStore, adminEmails ...string) *UserService {
	admins := make(map[string]string, len(adminEmails))
	for _, e := range adminEmails {
		if key := normalizeEmail(e); key != "" {
			admins[key] = strings.TrimSpace(e)
		}
	}
	return &UserService{store: store, admins: admins}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) isBootstrapAdmin(email string) bool {
	_, ok := s.admins[normalizeEmail(email)]
	return ok
}

// Register inserts u unless a record with the same email exists.
// The returned bool is false when the email was already registered.
func (s *UserService) Register(ctx context.Context, u *domain.User) (*domain.InsertResult, bool, error) {
	u.Email = strings.TrimSpace(u.Email)

	_, err := s.store.FindUserByEmail(ctx, u.Email)
	switch {
	case err == nil:
		return nil, false, nil
	case !errors.Is(err, port.ErrUserNotFound):
		return nil, false, fmt.Errorf("find user: %w", err)
	}

	// Roles are only granted through the role-assignment endpoints or ADMIN_EMAILS.
	u.Role = domain.RoleStudent
	if s.isBootstrapAdmin(u.Email) {
		u.Role = domain.RoleAdmin
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	res, err := s.store.InsertUser(ctx, u)
	if err != nil {
		return nil, false, fmt.Errorf("insert user: %w", err)
	}
	slog.Info("user registered", "email", u.Email, "id", res.InsertedID)
	return res, true, nil
}

// PromoteAdmins grants the admin role to already registered accounts listed
// in the bootstrap admin emails. Emails with no account yet are promoted on
// registration instead.
func (s *UserService) PromoteAdmins(ctx context.Context) error {
	for _, email := range s.admins {
		u, err := s.store.FindUserByEmail(ctx, email)
		if errors.Is(err, port.ErrUserNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("find admin %s: %w", email, err)
		}
		if u.Role == domain.RoleAdmin {
			continue
		}
		if _, err := s.store.SetUserRole(ctx, u.ID.Hex(), domain.RoleAdmin); err != nil {
			return fmt.Errorf("promote admin %s: %w", email, err)
		}
		slog.Info("bootstrap admin promoted", "email", email)
	}
	return nil
}

// List returns every user.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.store.ListUsers(ctx)
}

// Instructors returns the users holding the instructor role.
func (s *UserService) Instructors(ctx context.Context) ([]domain.User, error) {
	return s.store.ListUsersByRole(ctx, domain.RoleInstructor)
}

// Delete removes the user with the given record id.
func (s *UserService) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	res, err := s.store.DeleteUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}
	slog.Info("user deleted", "user_id", id, "deleted", res.DeletedCount)
	return res, nil
}
