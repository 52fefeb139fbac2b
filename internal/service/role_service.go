package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/musicalcamp/musicalcamp-server/internal/domain"
	"github.com/musicalcamp/musicalcamp-server/internal/port"
)

// RoleStore is the part of the user store role checks need.
type RoleStore interface {
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	SetUserRole(ctx context.Context, id string, role domain.Role) (*domain.UpdateResult, error)
}

// RoleService answers role questions about users.
//
// Both IsAdmin and IsInstructor only answer for the caller's own account:
// asking about another email yields false without touching the store.
type RoleService struct {
	store RoleStore
}

// NewRoleService creates a role service over store.
func NewRoleService(store RoleStore) *RoleService {
	return &RoleService{store: store}
}

// IsAdmin reports whether target is an admin, as seen by principal.
func (s *RoleService) IsAdmin(ctx context.Context, principal *domain.Principal, target string) (bool, error) {
	return s.selfHasRole(ctx, principal, target, domain.RoleAdmin)
}

// IsInstructor reports whether target is an instructor, as seen by principal.
func (s *RoleService) IsInstructor(ctx context.Context, principal *domain.Principal, target string) (bool, error) {
	return s.selfHasRole(ctx, principal, target, domain.RoleInstructor)
}

func (s *RoleService) selfHasRole(ctx context.Context, principal *domain.Principal, target string, role domain.Role) (bool, error) {
	if principal == nil || principal.Email != target {
		return false, nil
	}
	return s.HasRole(ctx, target, role)
}

// HasRole reports whether the record for email holds role. A missing record is false.
func (s *RoleService) HasRole(ctx context.Context, email string, role domain.Role) (bool, error) {
	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, port.ErrUserNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("find user: %w", err)
	}
	return user.Role == role, nil
}

// AssignRole sets the role of the user with the given record id.
// Callers are responsible for authorizing the change.
func (s *RoleService) AssignRole(ctx context.Context, id string, role domain.Role) (*domain.UpdateResult, error) {
	if !role.Assignable() {
		return nil, port.ErrInvalidRole
	}
	res, err := s.store.SetUserRole(ctx, id, role)
	if err != nil {
		return nil, fmt.Errorf("assign role: %w", err)
	}
	slog.Info("role assigned", "user_id", id, "role", role, "matched", res.MatchedCount)
	return res, nil
}
