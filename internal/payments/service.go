// Package payments lists the available payment methods and creates Stripe
// payment intents for client-side confirmation.
package payments

import (
	"context"
	"math"

	"github.com/stripe/stripe-go/v84"

	"github.com/greenkartlabs/greenkart-backend/internal/store"
	"github.com/greenkartlabs/greenkart-backend/pkg/config"
	pkgerrors "github.com/greenkartlabs/greenkart-backend/pkg/errors"
)

// IntentCreator is the slice of the Stripe client this service needs.
type IntentCreator interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (*stripe.PaymentIntent, error)
}

// Service exposes the payment surface.
type Service interface {
	Methods(ctx context.Context) []store.PaymentMethod
	CreateIntent(ctx context.Context, amount float64) (Intent, error)
}

// Intent carries the client secret the storefront uses to confirm payment.
type Intent struct {
	ClientSecret string `json:"clientSecret"`
}

type service struct {
	store    *store.Store
	stripe   IntentCreator
	currency string
}

// NewService constructs the payment service. A nil creator is allowed; intent
// creation then fails with a dependency error until Stripe is configured.
func NewService(st *store.Store, creator IntentCreator, cfg config.CheckoutConfig) (*service, error) {
	if st == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "store required")
	}
	return &service{store: st, stripe: creator, currency: cfg.Currency}, nil
}

func (s *service) Methods(_ context.Context) []store.PaymentMethod {
	return s.store.PaymentMethods()
}

// CreateIntent converts the rupee amount to paise and creates a payment
// intent for it.
func (s *service) CreateIntent(ctx context.Context, amount float64) (Intent, error) {
	if amount <= 0 {
		return Intent{}, pkgerrors.New(pkgerrors.CodeValidation, "amount must be greater than zero")
	}
	if s.stripe == nil {
		return Intent{}, pkgerrors.New(pkgerrors.CodeDependency, "stripe is not configured")
	}

	paise := int64(math.Round(amount * 100))
	intent, err := s.stripe.CreatePaymentIntent(ctx, paise, s.currency)
	if err != nil {
		return Intent{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating payment intent")
	}
	return Intent{ClientSecret: intent.ClientSecret}, nil
}
