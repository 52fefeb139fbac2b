package service

import (
	"context"
	"sync"

	"github.com/musicalcamp/musicalcamp-server/internal/domain"
	"github.com/musicalcamp/musicalcamp-server/internal/port"
)

// memoryUsers is an in-memory port.UserStore that counts email lookups.
type memoryUsers struct {
	mu      sync.Mutex
	byEmail map[string]*domain.User
	lookups int
	err     error
}

func newMemoryUsers(users ...domain.User) *memoryUsers {
	m := &memoryUsers{byEmail: map[string]*domain.User{}}
	for i := range users {
		u := users[i]
		m.byEmail[u.Email] = &u
	}
	return m
}

func (m *memoryUsers) ListUsers(context.Context) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.User, 0, len(m.byEmail))
	for _, u := range m.byEmail {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memoryUsers) ListUsersByRole(_ context.Context, role domain.Role) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.User
	for _, u := range m.byEmail {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (m *memoryUsers) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups++
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.byEmail[email]
	if !ok {
		return nil, port.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memoryUsers) InsertUser(_ context.Context, u *domain.User) (*domain.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *u
	m.byEmail[u.Email] = &cp
	return &domain.InsertResult{Acknowledged: true, InsertedID: "id-" + u.Email}, nil
}

func (m *memoryUsers) SetUserRole(_ context.Context, id string, role domain.Role) (*domain.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byEmail {
		if u.ID.Hex() == id {
			modified := int64(0)
			if u.Role != role {
				modified = 1
			}
			u.Role = role
			return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	return &domain.UpdateResult{Acknowledged: true}, nil
}

func (m *memoryUsers) DeleteUser(_ context.Context, id string) (*domain.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for email, u := range m.byEmail {
		if u.ID.Hex() == id {
			delete(m.byEmail, email)
			return &domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &domain.DeleteResult{Acknowledged: true}, nil
}

type fakeProcessor struct {
	gotAmount   int64
	gotCurrency string
	err         error
}

func (f *fakeProcessor) CreatePaymentIntent(_ context.Context, amount int64, currency string) (*domain.PaymentIntent, error) {
	f.gotAmount, f.gotCurrency = amount, currency
	if f.err != nil {
		return nil, f.err
	}
	return &domain.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret", Amount: amount, Currency: currency}, nil
}

type memoryPayments struct {
	saved []domain.Payment
}

func (m *memoryPayments) ListPayments(context.Context) ([]domain.Payment, error) {
	return m.saved, nil
}

func (m *memoryPayments) InsertPayment(_ context.Context, p *domain.Payment) (*domain.InsertResult, error) {
	m.saved = append(m.saved, *p)
	return &domain.InsertResult{Acknowledged: true, InsertedID: "pay-1"}, nil
}
