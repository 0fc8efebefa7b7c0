package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	catalogsvc "github.com/greenkartlabs/greenkart-backend/internal/catalog"
	"github.com/greenkartlabs/greenkart-backend/internal/store"
	pkgerrors "github.com/greenkartlabs/greenkart-backend/pkg/errors"
)

type stubCatalog struct {
	categories []store.Category
	products   []store.Product
	byCategory []store.Product
	byCatErr   error
	featured   []store.Product
	detail     catalogsvc.ProductWithDetail
	detailErr  error
	services   []store.Service
}

func (s stubCatalog) Categories(ctx context.Context) []store.Category { return s.categories }
func (s stubCatalog) Products(ctx context.Context) []store.Product    { return s.products }
func (s stubCatalog) ProductsByCategorySlug(ctx context.Context, slug string) ([]store.Product, error) {
	return s.byCategory, s.byCatErr
}
func (s stubCatalog) FeaturedProducts(ctx context.Context) []store.Product { return s.featured }
func (s stubCatalog) ProductBySlug(ctx context.Context, slug string) (catalogsvc.ProductWithDetail, error) {
	return s.detail, s.detailErr
}
func (s stubCatalog) Services(ctx context.Context) []store.Service { return s.services }

func TestListCategories(t *testing.T) {
	handler := ListCategories(stubCatalog{categories: []store.Category{{ID: 1, Name: "Plants", Slug: "plants"}}}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var got []store.Category
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 1 || got[0].Slug != "plants" {
		t.Fatalf("unexpected categories %v", got)
	}
}

func TestListProductsAll(t *testing.T) {
	handler := ListProducts(stubCatalog{products: []store.Product{{ID: 1}, {ID: 2}}}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var got []store.Product
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 products got %d", len(got))
	}
}

func TestListProductsByCategory(t *testing.T) {
	handler := ListProducts(stubCatalog{byCategory: []store.Product{{ID: 7}}}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/products?category=plants", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var got []store.Product
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 1 || got[0].ID != 7 {
		t.Fatalf("unexpected products %v", got)
	}
}

func TestListProductsUnknownCategory(t *testing.T) {
	handler := ListProducts(stubCatalog{byCatErr: pkgerrors.New(pkgerrors.CodeNotFound, "category not found")}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/products?category=nope", nil))

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestProductBySlug(t *testing.T) {
	detail := catalogsvc.ProductWithDetail{
		Product: store.Product{ID: 3, Slug: "monstera-deliciosa"},
		Details: &store.ProductDetail{ProductID: 3, Light: "Bright indirect"},
	}
	handler := ProductBySlug(stubCatalog{detail: detail}, nil)

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("slug", "monstera-deliciosa")
	req := httptest.NewRequest(http.MethodGet, "/api/products/monstera-deliciosa", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var got struct {
		Slug    string               `json:"slug"`
		Details *store.ProductDetail `json:"details"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Slug != "monstera-deliciosa" || got.Details == nil || got.Details.Light != "Bright indirect" {
		t.Fatalf("unexpected payload %+v", got)
	}
}

func TestProductBySlugNotFound(t *testing.T) {
	handler := ProductBySlug(stubCatalog{detailErr: pkgerrors.New(pkgerrors.CodeNotFound, "product not found")}, nil)

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("slug", "missing")
	req := httptest.NewRequest(http.MethodGet, "/api/products/missing", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestListServices(t *testing.T) {
	handler := ListServices(stubCatalog{services: []store.Service{{ID: 1, Name: "Garden Maintenance"}}}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/services", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestListCategoriesNilService(t *testing.T) {
	handler := ListCategories(nil, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
}
