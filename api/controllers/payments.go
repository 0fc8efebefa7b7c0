package controllers

import (
	"net/http"

	"github.com/greenkartlabs/greenkart-backend/api/responses"
	"github.com/greenkartlabs/greenkart-backend/api/validators"
	paymentsvc "github.com/greenkartlabs/greenkart-backend/internal/payments"
	pkgerrors "github.com/greenkartlabs/greenkart-backend/pkg/errors"
	"github.com/greenkartlabs/greenkart-backend/pkg/logger"
)

// ListPaymentMethods returns the enabled payment options in display order.
func ListPaymentMethods(svc paymentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "payment service unavailable"))
			return
		}

		responses.WriteSuccess(w, svc.Methods(r.Context()))
	}
}

// CreatePaymentIntent creates a Stripe payment intent for the given amount
// and returns its client secret.
func CreatePaymentIntent(svc paymentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "payment service unavailable"))
			return
		}

		var payload paymentIntentRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		intent, err := svc.CreateIntent(r.Context(), payload.Amount)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, intent)
	}
}

type paymentIntentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}
