package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/musicalcamp/musicalcamp-server/internal/domain"
	"github.com/musicalcamp/musicalcamp-server/internal/metrics"
	"github.com/musicalcamp/musicalcamp-server/internal/port"
)

// PaymentService creates payment intents and records completed payments.
type PaymentService struct {
	processor port.PaymentProcessor
	store     port.PaymentStore
	currency  string
}

// NewPaymentService creates a payment service. processor may be nil when
// payments are not configured.
func NewPaymentService(processor port.PaymentProcessor, store port.PaymentStore, currency string) *PaymentService {
	return &PaymentService{processor: processor, store: store, currency: currency}
}

// CreateIntent opens a card payment for price, given in major currency units.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (*domain.PaymentIntent, error) {
	if s.processor == nil {
		return nil, port.ErrPaymentsDisabled
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, port.ErrInvalidAmount
	}
	amount := int64(math.Round(price * 100))
	if amount <= 0 {
		return nil, port.ErrInvalidAmount
	}

	intent, err := s.processor.CreatePaymentIntent(ctx, amount, s.currency)
	if err != nil {
		metrics.PaymentIntent("error")
		return nil, fmt.Errorf("create payment intent: %w", err)
	}
	metrics.PaymentIntent("created")
	slog.Info("payment intent created", "intent_id", intent.ID, "amount", amount, "currency", s.currency)
	return intent, nil
}

// Record stores a completed payment. An empty email is filled from payer.
func (s *PaymentService) Record(ctx context.Context, p *domain.Payment, payer *domain.Principal) (*domain.InsertResult, error) {
	if p.Email == "" && payer != nil {
		p.Email = payer.Email
	}
	if p.Date.IsZero() {
		p.Date = time.Now().UTC()
	}
	res, err := s.store.InsertPayment(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}
	slog.Info("payment recorded", "email", p.Email, "transaction_id", p.TransactionID)
	return res, nil
}

// List returns payments newest first.
func (s *PaymentService) List(ctx context.Context) ([]domain.Payment, error) {
	return s.store.ListPayments(ctx)
}
