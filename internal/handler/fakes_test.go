package handler

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/musicalcamp/musicalcamp-server/internal/domain"
	"github.com/musicalcamp/musicalcamp-server/internal/port"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memoryStore is an in-memory implementation of every store port.
type memoryStore struct {
	mu         sync.Mutex
	users      []domain.User
	classes    []domain.Class
	selections []domain.Selection
	payments   []domain.Payment
	audit      []domain.AuditLog
	pingErr    error
}

func (m *memoryStore) Ping(context.Context) error { return m.pingErr }

func (m *memoryStore) ListUsers(context.Context) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.User{}, m.users...), nil
}

func (m *memoryStore) ListUsersByRole(_ context.Context, role domain.Role) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.User{}
	for _, u := range m.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memoryStore) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, port.ErrUserNotFound
}

func (m *memoryStore) InsertUser(_ context.Context, u *domain.User) (*domain.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *u
	cp.ID = primitive.NewObjectID()
	m.users = append(m.users, cp)
	return &domain.InsertResult{Acknowledged: true, InsertedID: cp.ID.Hex()}, nil
}

func (m *memoryStore) SetUserRole(_ context.Context, id string, role domain.Role) (*domain.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, port.ErrInvalidID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID == oid {
			m.users[i].Role = role
			return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &domain.UpdateResult{Acknowledged: true}, nil
}

func (m *memoryStore) DeleteUser(_ context.Context, id string) (*domain.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, port.ErrInvalidID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID == oid {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return &domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &domain.DeleteResult{Acknowledged: true}, nil
}

func (m *memoryStore) ListClassesByStatus(_ context.Context, status string) ([]domain.Class, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Class{}
	for _, c := range m.classes {
		if c.Status == status {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].AvailableSeats < out[j].AvailableSeats })
	return out, nil
}

func (m *memoryStore) ListClassesByInstructor(_ context.Context, email string) ([]domain.Class, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Class{}
	for _, c := range m.classes {
		if c.Email == email {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memoryStore) InsertClass(_ context.Context, c *domain.Class) (*domain.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *c
	if cp.ID.IsZero() {
		cp.ID = domain.DocID(primitive.NewObjectID().Hex())
	}
	if cp.Status == "" {
		cp.Status = domain.ClassStatusPending
	}
	m.classes = append(m.classes, cp)
	return &domain.InsertResult{Acknowledged: true, InsertedID: string(cp.ID)}, nil
}

func (m *memoryStore) class(id string) (*domain.Class, error) {
	if id == "" {
		return nil, port.ErrInvalidID
	}
	for i := range m.classes {
		if string(m.classes[i].ID) == id {
			return &m.classes[i], nil
		}
	}
	return nil, nil
}

func (m *memoryStore) SetClassStatus(_ context.Context, id, status string) (*domain.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, err := m.class(id)
	if err != nil || c == nil {
		return &domain.UpdateResult{Acknowledged: true}, err
	}
	c.Status = status
	return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memoryStore) SetClassSeats(_ context.Context, id string, seats int) (*domain.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, err := m.class(id)
	if err != nil || c == nil {
		return &domain.UpdateResult{Acknowledged: true}, err
	}
	c.AvailableSeats = seats
	return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memoryStore) ListSelections(_ context.Context, email, payment string) ([]domain.Selection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Selection{}
	for _, s := range m.selections {
		if s.Email == email && s.Payment == payment {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memoryStore) selection(id string) (int, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return -1, port.ErrInvalidID
	}
	for i := range m.selections {
		if m.selections[i].ID == oid {
			return i, nil
		}
	}
	return -1, port.ErrSelectionNotFound
}

func (m *memoryStore) FindSelection(_ context.Context, id string) (*domain.Selection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, err := m.selection(id)
	if err != nil {
		return nil, err
	}
	cp := m.selections[i]
	return &cp, nil
}

func (m *memoryStore) InsertSelection(_ context.Context, s *domain.Selection) (*domain.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	cp.ID = primitive.NewObjectID()
	if cp.Payment == "" {
		cp.Payment = domain.PaymentPending
	}
	m.selections = append(m.selections, cp)
	return &domain.InsertResult{Acknowledged: true, InsertedID: cp.ID.Hex()}, nil
}

func (m *memoryStore) MarkSelectionPaid(_ context.Context, id string, seats int) (*domain.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, err := m.selection(id)
	if errors.Is(err, port.ErrSelectionNotFound) {
		return &domain.UpdateResult{Acknowledged: true}, nil
	}
	if err != nil {
		return nil, err
	}
	m.selections[i].Payment = domain.PaymentDone
	m.selections[i].AvailableSeats = seats
	return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memoryStore) DeleteSelection(_ context.Context, id string) (*domain.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, err := m.selection(id)
	if errors.Is(err, port.ErrSelectionNotFound) {
		return &domain.DeleteResult{Acknowledged: true}, nil
	}
	if err != nil {
		return nil, err
	}
	m.selections = append(m.selections[:i], m.selections[i+1:]...)
	return &domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (m *memoryStore) ListPayments(context.Context) ([]domain.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Payment{}, m.payments...), nil
}

func (m *memoryStore) InsertPayment(_ context.Context, p *domain.Payment) (*domain.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments = append(m.payments, *p)
	return &domain.InsertResult{Acknowledged: true, InsertedID: primitive.NewObjectID().Hex()}, nil
}

func (m *memoryStore) WriteAudit(_ context.Context, entry *domain.AuditLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.audit = append(m.audit, *entry)
	return nil
}

func (m *memoryStore) ListAuditLogs(_ context.Context, limit int, action string) ([]domain.AuditLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.AuditLog{}
	for _, l := range m.audit {
		if action != "" && l.Action != action {
			continue
		}
		out = append(out, l)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakeProcessor struct {
	gotAmount int64
}

func (f *fakeProcessor) CreatePaymentIntent(_ context.Context, amount int64, currency string) (*domain.PaymentIntent, error) {
	f.gotAmount = amount
	return &domain.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret_abc", Amount: amount, Currency: currency}, nil
}
