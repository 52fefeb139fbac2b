package port

import (
	"context"

	"github.com/musicalcamp/musicalcamp-server/internal/domain"
)

// UserStore persists user records keyed by email.
type UserStore interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListUsersByRole(ctx context.Context, role domain.Role) ([]domain.User, error)

	// FindUserByEmail returns ErrUserNotFound when no record matches.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	InsertUser(ctx context.Context, u *domain.User) (*domain.InsertResult, error)
	SetUserRole(ctx context.Context, id string, role domain.Role) (*domain.UpdateResult, error)
	DeleteUser(ctx context.Context, id string) (*domain.DeleteResult, error)
}

// ClassStore persists class listings.
type ClassStore interface {
	// ListClassesByStatus returns classes in the given status, fewest available seats first.
	ListClassesByStatus(ctx context.Context, status string) ([]domain.Class, error)
	ListClassesByInstructor(ctx context.Context, email string) ([]domain.Class, error)
	InsertClass(ctx context.Context, c *domain.Class) (*domain.InsertResult, error)
	SetClassStatus(ctx context.Context, id, status string) (*domain.UpdateResult, error)
	SetClassSeats(ctx context.Context, id string, seats int) (*domain.UpdateResult, error)
}

// SelectionStore persists the classes students have selected.
type SelectionStore interface {
	ListSelections(ctx context.Context, email, payment string) ([]domain.Selection, error)

	// FindSelection returns ErrSelectionNotFound when no record matches.
	FindSelection(ctx context.Context, id string) (*domain.Selection, error)

	InsertSelection(ctx context.Context, s *domain.Selection) (*domain.InsertResult, error)
	MarkSelectionPaid(ctx context.Context, id string, seats int) (*domain.UpdateResult, error)
	DeleteSelection(ctx context.Context, id string) (*domain.DeleteResult, error)
}

// PaymentStore persists payment records.
type PaymentStore interface {
	// ListPayments returns payments newest first.
	ListPayments(ctx context.Context) ([]domain.Payment, error)
	InsertPayment(ctx context.Context, p *domain.Payment) (*domain.InsertResult, error)
}

// AuditStore persists and lists request audit records.
type AuditStore interface {
	WriteAudit(ctx context.Context, entry *domain.AuditLog) error
	ListAuditLogs(ctx context.Context, limit int, action string) ([]domain.AuditLog, error)
}
