package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/greenkartlabs/greenkart-backend/api/middleware"
	"github.com/greenkartlabs/greenkart-backend/api/responses"
	"github.com/greenkartlabs/greenkart-backend/api/validators"
	cartsvc "github.com/greenkartlabs/greenkart-backend/internal/cart"
	pkgerrors "github.com/greenkartlabs/greenkart-backend/pkg/errors"
	"github.com/greenkartlabs/greenkart-backend/pkg/logger"
)

// GetCart returns the current session's cart items joined with products.
func GetCart(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		responses.WriteSuccess(w, svc.ForSession(r.Context(), sessionID))
	}
}

// AddCartItem adds a product to the cart, merging quantities with any
// existing row for the same product.
func AddCartItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		item, err := svc.AddItem(r.Context(), sessionID, payload.ProductID, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

// UpdateCartItem sets a cart line's quantity. A quantity of zero or less
// removes the line and responds with a deleted marker.
func UpdateCartItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cart item id"))
			return
		}

		var payload updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, removed, err := svc.SetQuantity(r.Context(), id, *payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if removed {
			responses.WriteSuccess(w, map[string]bool{"deleted": true})
			return
		}

		responses.WriteSuccess(w, item)
	}
}

// RemoveCartItem deletes a cart line.
func RemoveCartItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cart item id"))
			return
		}

		if err := svc.RemoveItem(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteNoContent(w)
	}
}

// ClearCart removes every item in the current session's cart.
func ClearCart(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		svc.Clear(r.Context(), middleware.SessionIDFromContext(r.Context()))
		responses.WriteNoContent(w)
	}
}

type addCartItemRequest struct {
	ProductID int `json:"productId" validate:"required,min=1"`
	Quantity  int `json:"quantity" validate:"omitempty,min=1"`
}

type updateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}
