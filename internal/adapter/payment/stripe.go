package payment

import (
	"context"
	"fmt"

	"github.com/musicalcamp/musicalcamp-server/internal/domain"
	"github.com/musicalcamp/musicalcamp-server/internal/port"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// StripeProcessor creates card payment intents through the Stripe API.
type StripeProcessor struct {
	client paymentintent.Client
}

// NewStripeProcessor creates a processor authenticated with secretKey.
func NewStripeProcessor(secretKey string) *StripeProcessor {
	return NewStripeProcessorWithBackend(secretKey, stripe.GetBackend(stripe.APIBackend))
}

// NewStripeProcessorWithBackend lets callers point the client at another API backend.
func NewStripeProcessorWithBackend(secretKey string, backend stripe.Backend) *StripeProcessor {
	return &StripeProcessor{client: paymentintent.Client{B: backend, Key: secretKey}}
}

// CreatePaymentIntent implements port.PaymentProcessor.
func (p *StripeProcessor) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (*domain.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := p.client.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe payment intent: %w", err)
	}

	return &domain.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}, nil
}

var _ port.PaymentProcessor = (*StripeProcessor)(nil)
