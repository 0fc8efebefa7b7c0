// Package orders implements checkout: it snapshots the session's cart into
// an order with denormalized line items, computes totals and clears the cart.
package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/greenkartlabs/greenkart-backend/internal/store"
	"github.com/greenkartlabs/greenkart-backend/pkg/config"
	pkgerrors "github.com/greenkartlabs/greenkart-backend/pkg/errors"
)

const (
	statusPending        = "pending"
	paymentStatusPending = "pending"
)

// Service exposes the order surface.
type Service interface {
	Checkout(ctx context.Context, sessionID string, input CheckoutInput) (OrderWithItems, error)
	ForSession(ctx context.Context, sessionID string) []OrderWithItems
	ByNumber(ctx context.Context, orderNumber string) (OrderWithItems, error)
	UpdateStatus(ctx context.Context, id int, status string) (store.Order, error)
}

// CheckoutInput carries the caller-supplied order fields; totals and status
// are computed here, never trusted from the request.
type CheckoutInput struct {
	UserID            *int
	PaymentMethodCode string
	ShippingAddress   json.RawMessage
	BillingAddress    json.RawMessage
	Notes             string
}

// OrderWithItems is an order joined with its line item snapshots.
type OrderWithItems struct {
	store.Order
	Items []store.OrderItem `json:"items"`
}

type service struct {
	store    *store.Store
	taxRate  decimal.Decimal
	shipping int64
	freeOver int64
	now      func() time.Time
}

// NewService constructs the order service with the configured pricing
// constants.
func NewService(st *store.Store, cfg config.CheckoutConfig) (*service, error) {
	if st == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "store required")
	}
	return &service{
		store:    st,
		taxRate:  decimal.NewFromInt(cfg.TaxRatePercent).Div(decimal.NewFromInt(100)),
		shipping: cfg.ShippingFee,
		freeOver: cfg.FreeShippingThreshold,
		now:      time.Now,
	}, nil
}

// Checkout snapshots the session's cart into an order. An empty cart is a
// validation failure and creates nothing. Line items capture the product's
// name, image and price at order time; items whose product no longer
// resolves are priced at zero, matching the store's lack of referential
// integrity.
func (s *service) Checkout(_ context.Context, sessionID string, input CheckoutInput) (OrderWithItems, error) {
	cartItems := s.store.CartBySession(sessionID)
	if len(cartItems) == 0 {
		return OrderWithItems{}, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	var subtotal int64
	for _, item := range cartItems {
		if product, ok := s.store.ProductByID(item.ProductID); ok {
			subtotal += product.Price * int64(item.Quantity)
		}
	}

	tax := decimal.NewFromInt(subtotal).Mul(s.taxRate).Round(0).IntPart()
	var shippingFee int64
	if subtotal < s.freeOver {
		shippingFee = s.shipping
	}
	total := subtotal + tax + shippingFee

	order := s.store.CreateOrder(store.OrderInput{
		OrderNumber:       s.newOrderNumber(),
		UserID:            input.UserID,
		SessionID:         sessionID,
		Status:            statusPending,
		Subtotal:          subtotal,
		Tax:               tax,
		ShippingFee:       shippingFee,
		Total:             total,
		PaymentMethodCode: input.PaymentMethodCode,
		ShippingAddress:   input.ShippingAddress,
		BillingAddress:    input.BillingAddress,
		PaymentStatus:     paymentStatusPending,
		Notes:             input.Notes,
	})

	items := make([]store.OrderItem, 0, len(cartItems))
	for _, item := range cartItems {
		line := store.OrderItemInput{
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Name:      "Unknown Product",
		}
		if product, ok := s.store.ProductByID(item.ProductID); ok {
			line.Name = product.Name
			line.Price = product.Price
			line.ImageURL = product.ImageURL
		}
		items = append(items, s.store.CreateOrderItem(line))
	}

	s.store.ClearCart(sessionID)

	return OrderWithItems{Order: order, Items: items}, nil
}

func (s *service) ForSession(_ context.Context, sessionID string) []OrderWithItems {
	orders := s.store.OrdersBySession(sessionID)
	out := make([]OrderWithItems, 0, len(orders))
	for _, order := range orders {
		out = append(out, OrderWithItems{Order: order, Items: s.store.OrderItems(order.ID)})
	}
	return out
}

func (s *service) ByNumber(_ context.Context, orderNumber string) (OrderWithItems, error) {
	order, ok := s.store.OrderByNumber(orderNumber)
	if !ok {
		return OrderWithItems{}, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return OrderWithItems{Order: order, Items: s.store.OrderItems(order.ID)}, nil
}

// UpdateStatus moves an order to a new lifecycle status and refreshes its
// update timestamp.
func (s *service) UpdateStatus(_ context.Context, id int, status string) (store.Order, error) {
	if status == "" {
		return store.Order{}, pkgerrors.New(pkgerrors.CodeValidation, "status is required")
	}
	order, ok := s.store.UpdateOrderStatus(id, status)
	if !ok {
		return store.Order{}, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return order, nil
}

// newOrderNumber derives the order number from the last eight digits of the
// creation timestamp in milliseconds. The store suffixes on collision.
func (s *service) newOrderNumber() string {
	return fmt.Sprintf("ORD-%08d", s.now().UnixMilli()%100000000)
}
