package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/greenkartlabs/greenkart-backend/api/middleware"
	"github.com/greenkartlabs/greenkart-backend/api/responses"
	"github.com/greenkartlabs/greenkart-backend/api/validators"
	ordersvc "github.com/greenkartlabs/greenkart-backend/internal/orders"
	pkgerrors "github.com/greenkartlabs/greenkart-backend/pkg/errors"
	"github.com/greenkartlabs/greenkart-backend/pkg/logger"
)

// CreateOrder checks out the current session's cart into an order.
func CreateOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		var payload createOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		order, err := svc.Checkout(r.Context(), sessionID, ordersvc.CheckoutInput{
			UserID:            payload.UserID,
			PaymentMethodCode: payload.PaymentMethodCode,
			ShippingAddress:   payload.ShippingAddress,
			BillingAddress:    payload.BillingAddress,
			Notes:             payload.Notes,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

// ListOrders returns the current session's orders, newest first, each with
// its line items.
func ListOrders(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		responses.WriteSuccess(w, svc.ForSession(r.Context(), sessionID))
	}
}

// OrderByNumber returns one order with its line items.
func OrderByNumber(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		order, err := svc.ByNumber(r.Context(), chi.URLParam(r, "orderNumber"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, order)
	}
}

type createOrderRequest struct {
	UserID            *int            `json:"userId"`
	PaymentMethodCode string          `json:"paymentMethodCode" validate:"required"`
	ShippingAddress   json.RawMessage `json:"shippingAddress" validate:"required"`
	BillingAddress    json.RawMessage `json:"billingAddress" validate:"required"`
	Notes             string          `json:"notes"`
}
