package payments

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v84"

	"github.com/greenkartlabs/greenkart-backend/internal/store"
	"github.com/greenkartlabs/greenkart-backend/pkg/config"
	pkgerrors "github.com/greenkartlabs/greenkart-backend/pkg/errors"
)

type stubIntentCreator struct {
	gotAmount   int64
	gotCurrency string
	intent      *stripe.PaymentIntent
	err         error
}

func (s *stubIntentCreator) CreatePaymentIntent(_ context.Context, amount int64, currency string) (*stripe.PaymentIntent, error) {
	s.gotAmount = amount
	s.gotCurrency = currency
	return s.intent, s.err
}

func newTestService(t *testing.T, creator IntentCreator) *service {
	t.Helper()
	svc, err := NewService(store.New(), creator, config.CheckoutConfig{Currency: "inr"})
	require.NoError(t, err)
	return svc
}

func TestMethodsSeeded(t *testing.T) {
	st := store.New()
	st.Seed()
	svc, err := NewService(st, nil, config.CheckoutConfig{Currency: "inr"})
	require.NoError(t, err)

	methods := svc.Methods(context.Background())
	require.Len(t, methods, 5)
}

func TestCreateIntentConvertsToPaise(t *testing.T) {
	stub := &stubIntentCreator{intent: &stripe.PaymentIntent{ClientSecret: "pi_secret_123"}}
	svc := newTestService(t, stub)

	got, err := svc.CreateIntent(context.Background(), 412.95)
	require.NoError(t, err)
	require.Equal(t, int64(41295), stub.gotAmount)
	require.Equal(t, "inr", stub.gotCurrency)
	require.Equal(t, "pi_secret_123", got.ClientSecret)
}

func TestCreateIntentRejectsNonPositive(t *testing.T) {
	svc := newTestService(t, &stubIntentCreator{})

	for _, amount := range []float64{0, -10} {
		_, err := svc.CreateIntent(context.Background(), amount)
		appErr := pkgerrors.As(err)
		require.NotNil(t, appErr)
		require.Equal(t, pkgerrors.CodeValidation, appErr.Code())
	}
}

func TestCreateIntentUnconfigured(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.CreateIntent(context.Background(), 100)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	require.Equal(t, pkgerrors.CodeDependency, appErr.Code())
}

func TestCreateIntentStripeFailure(t *testing.T) {
	stub := &stubIntentCreator{err: errors.New("stripe unavailable")}
	svc := newTestService(t, stub)

	_, err := svc.CreateIntent(context.Background(), 100)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	require.Equal(t, pkgerrors.CodeDependency, appErr.Code())
}
