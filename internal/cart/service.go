// Package cart implements the session cart semantics: one row per
// (session, product) pair, quantity merging, zero-quantity removal and
// session-scoped clearing.
package cart

import (
	"context"

	"github.com/greenkartlabs/greenkart-backend/internal/store"
	pkgerrors "github.com/greenkartlabs/greenkart-backend/pkg/errors"
)

// Service exposes the cart surface.
type Service interface {
	ForSession(ctx context.Context, sessionID string) []ItemWithProduct
	AddItem(ctx context.Context, sessionID string, productID, quantity int) (store.CartItem, error)
	SetQuantity(ctx context.Context, id, quantity int) (item store.CartItem, removed bool, err error)
	RemoveItem(ctx context.Context, id int) error
	Clear(ctx context.Context, sessionID string)
}

// ItemWithProduct joins a cart item with its product. Product is null when
// the referenced product no longer exists; callers tolerate the gap since
// the store enforces no referential integrity.
type ItemWithProduct struct {
	store.CartItem
	Product *store.Product `json:"product"`
}

type service struct {
	store *store.Store
}

// NewService constructs the cart service.
func NewService(st *store.Store) (*service, error) {
	if st == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "store required")
	}
	return &service{store: st}, nil
}

func (s *service) ForSession(_ context.Context, sessionID string) []ItemWithProduct {
	items := s.store.CartBySession(sessionID)
	out := make([]ItemWithProduct, 0, len(items))
	for _, item := range items {
		joined := ItemWithProduct{CartItem: item}
		if product, ok := s.store.ProductByID(item.ProductID); ok {
			joined.Product = &product
		}
		out = append(out, joined)
	}
	return out
}

// AddItem adds quantity of productID to the session's cart, merging into an
// existing row when one exists. A non-positive quantity means 1.
func (s *service) AddItem(_ context.Context, sessionID string, productID, quantity int) (store.CartItem, error) {
	if productID <= 0 {
		return store.CartItem{}, pkgerrors.New(pkgerrors.CodeValidation, "productId is required")
	}
	return s.store.AddCartItem(store.CartItemInput{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
	}), nil
}

// SetQuantity updates an item in place; a quantity of zero or below removes
// it, which is signalled via removed rather than an error.
func (s *service) SetQuantity(_ context.Context, id, quantity int) (store.CartItem, bool, error) {
	item, removed, ok := s.store.SetCartItemQuantity(id, quantity)
	if !ok {
		if quantity <= 0 {
			// The row the caller wanted gone is already gone.
			return store.CartItem{}, true, nil
		}
		return store.CartItem{}, false, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}
	return item, removed, nil
}

func (s *service) RemoveItem(_ context.Context, id int) error {
	if !s.store.RemoveCartItem(id) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}
	return nil
}

func (s *service) Clear(_ context.Context, sessionID string) {
	s.store.ClearCart(sessionID)
}
