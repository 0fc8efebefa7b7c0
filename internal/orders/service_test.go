package orders

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/greenkartlabs/greenkart-backend/internal/store"
	"github.com/greenkartlabs/greenkart-backend/pkg/config"
	pkgerrors "github.com/greenkartlabs/greenkart-backend/pkg/errors"
)

func testCheckoutConfig() config.CheckoutConfig {
	return config.CheckoutConfig{
		TaxRatePercent:        5,
		ShippingFee:           9900,
		FreeShippingThreshold: 100000,
		Currency:              "inr",
	}
}

func newTestService(t *testing.T) (*service, *store.Store) {
	t.Helper()
	st := store.New()
	svc, err := NewService(st, testCheckoutConfig())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc, st
}

func addProduct(t *testing.T, st *store.Store, name string, price int64) store.Product {
	t.Helper()
	return st.CreateProduct(store.ProductInput{
		Name:     name,
		Slug:     strings.ToLower(strings.ReplaceAll(name, " ", "-")),
		Price:    price,
		ImageURL: "https://images.example.com/" + name + ".jpg",
		InStock:  true,
	})
}

func TestCheckoutTotals(t *testing.T) {
	svc, st := newTestService(t)
	product := addProduct(t, st, "Monstera Deliciosa", 29900)
	st.AddCartItem(store.CartItemInput{SessionID: "s1", ProductID: product.ID, Quantity: 1})

	order, err := svc.Checkout(context.Background(), "s1", CheckoutInput{
		PaymentMethodCode: "card",
		ShippingAddress:   json.RawMessage(`{"city":"Bengaluru"}`),
		BillingAddress:    json.RawMessage(`{"city":"Bengaluru"}`),
	})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if order.Subtotal != 29900 {
		t.Fatalf("subtotal = %d, want 29900", order.Subtotal)
	}
	if order.Tax != 1495 {
		t.Fatalf("tax = %d, want 1495", order.Tax)
	}
	if order.ShippingFee != 9900 {
		t.Fatalf("shipping fee = %d, want 9900", order.ShippingFee)
	}
	if order.Total != 41295 {
		t.Fatalf("total = %d, want 41295", order.Total)
	}
	if order.Status != "pending" || order.PaymentStatus != "pending" {
		t.Fatalf("status = %q/%q, want pending/pending", order.Status, order.PaymentStatus)
	}
	if !strings.HasPrefix(order.OrderNumber, "ORD-") {
		t.Fatalf("order number %q missing ORD- prefix", order.OrderNumber)
	}
}

func TestCheckoutFreeShippingAtThreshold(t *testing.T) {
	svc, st := newTestService(t)
	product := addProduct(t, st, "Garden Bundle", 50000)
	st.AddCartItem(store.CartItemInput{SessionID: "s1", ProductID: product.ID, Quantity: 2})

	order, err := svc.Checkout(context.Background(), "s1", CheckoutInput{PaymentMethodCode: "card"})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if order.Subtotal != 100000 {
		t.Fatalf("subtotal = %d, want 100000", order.Subtotal)
	}
	if order.ShippingFee != 0 {
		t.Fatalf("shipping fee = %d, want 0 at the free shipping threshold", order.ShippingFee)
	}
	if order.Total != 105000 {
		t.Fatalf("total = %d, want 105000", order.Total)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Checkout(context.Background(), "s1", CheckoutInput{PaymentMethodCode: "card"})
	if err == nil {
		t.Fatal("expected error for empty cart")
	}
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCheckoutSnapshotsLineItems(t *testing.T) {
	svc, st := newTestService(t)
	product := addProduct(t, st, "Ceramic Pot", 12900)
	st.AddCartItem(store.CartItemInput{SessionID: "s1", ProductID: product.ID, Quantity: 3})

	order, err := svc.Checkout(context.Background(), "s1", CheckoutInput{PaymentMethodCode: "cod"})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if len(order.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(order.Items))
	}
	item := order.Items[0]
	if item.Name != "Ceramic Pot" || item.Price != 12900 || item.Quantity != 3 {
		t.Fatalf("unexpected line item %+v", item)
	}

	// Later product edits must not change the recorded line.
	product.Name = "Ceramic Pot XL"
	product.Price = 19900
	st.UpdateProduct(product)
	got, err := svc.ByNumber(context.Background(), order.OrderNumber)
	if err != nil {
		t.Fatalf("ByNumber: %v", err)
	}
	if got.Items[0].Price != 12900 || got.Items[0].Name != "Ceramic Pot" {
		t.Fatalf("line item mutated after product update: %+v", got.Items[0])
	}
}

func TestCheckoutClearsCart(t *testing.T) {
	svc, st := newTestService(t)
	product := addProduct(t, st, "Potting Soil", 9900)
	st.AddCartItem(store.CartItemInput{SessionID: "s1", ProductID: product.ID, Quantity: 1})
	st.AddCartItem(store.CartItemInput{SessionID: "s2", ProductID: product.ID, Quantity: 1})

	if _, err := svc.Checkout(context.Background(), "s1", CheckoutInput{PaymentMethodCode: "card"}); err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if got := st.CartBySession("s1"); len(got) != 0 {
		t.Fatalf("cart for s1 not cleared: %d items", len(got))
	}
	if got := st.CartBySession("s2"); len(got) != 1 {
		t.Fatalf("cart for s2 affected: %d items", len(got))
	}
}

func TestCheckoutVanishedProductPricedZero(t *testing.T) {
	svc, st := newTestService(t)
	product := addProduct(t, st, "Watering Can", 5900)
	st.AddCartItem(store.CartItemInput{SessionID: "s1", ProductID: product.ID, Quantity: 2})
	st.DeleteProduct(product.ID)

	order, err := svc.Checkout(context.Background(), "s1", CheckoutInput{PaymentMethodCode: "card"})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if order.Subtotal != 0 {
		t.Fatalf("subtotal = %d, want 0 for vanished product", order.Subtotal)
	}
	if order.Items[0].Name != "Unknown Product" || order.Items[0].Price != 0 {
		t.Fatalf("unexpected placeholder line %+v", order.Items[0])
	}
}

func TestForSessionScoped(t *testing.T) {
	svc, st := newTestService(t)
	product := addProduct(t, st, "Pruning Shears", 14900)

	st.AddCartItem(store.CartItemInput{SessionID: "s1", ProductID: product.ID, Quantity: 1})
	if _, err := svc.Checkout(context.Background(), "s1", CheckoutInput{PaymentMethodCode: "card"}); err != nil {
		t.Fatalf("Checkout s1: %v", err)
	}
	st.AddCartItem(store.CartItemInput{SessionID: "s2", ProductID: product.ID, Quantity: 1})
	if _, err := svc.Checkout(context.Background(), "s2", CheckoutInput{PaymentMethodCode: "card"}); err != nil {
		t.Fatalf("Checkout s2: %v", err)
	}

	got := svc.ForSession(context.Background(), "s1")
	if len(got) != 1 {
		t.Fatalf("orders for s1 = %d, want 1", len(got))
	}
	if len(got[0].Items) != 1 {
		t.Fatalf("items for s1 order = %d, want 1", len(got[0].Items))
	}
}

func TestByNumberNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ByNumber(context.Background(), "ORD-00000000")
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	svc, st := newTestService(t)
	product := addProduct(t, st, "Rose Plant", 19900)
	st.AddCartItem(store.CartItemInput{SessionID: "s1", ProductID: product.ID, Quantity: 1})

	order, err := svc.Checkout(context.Background(), "s1", CheckoutInput{PaymentMethodCode: "card"})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), order.ID, "shipped")
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != "shipped" {
		t.Fatalf("status = %q, want shipped", updated.Status)
	}

	if _, err := svc.UpdateStatus(context.Background(), order.ID, ""); err == nil {
		t.Fatal("expected error for empty status")
	}
	_, err = svc.UpdateStatus(context.Background(), 999, "shipped")
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestOrderNumberFormat(t *testing.T) {
	svc, _ := newTestService(t)
	svc.now = func() time.Time { return time.UnixMilli(1756400012345) }

	if got := svc.newOrderNumber(); got != "ORD-00012345" {
		t.Fatalf("order number = %q, want ORD-00012345", got)
	}
}
