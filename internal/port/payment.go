package port

import (
	"context"

	"github.com/musicalcamp/musicalcamp-server/internal/domain"
)

// PaymentProcessor abstracts the third-party card processor.
type PaymentProcessor interface {
	// CreatePaymentIntent opens a card payment for amount, expressed in minor units of currency.
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (*domain.PaymentIntent, error)
}
