// Package catalog answers category, product and service queries against the
// session store.
package catalog

import (
	"context"

	"github.com/greenkartlabs/greenkart-backend/internal/store"
	pkgerrors "github.com/greenkartlabs/greenkart-backend/pkg/errors"
)

// Service exposes the read-only catalog surface.
type Service interface {
	Categories(ctx context.Context) []store.Category
	Products(ctx context.Context) []store.Product
	ProductsByCategorySlug(ctx context.Context, slug string) ([]store.Product, error)
	FeaturedProducts(ctx context.Context) []store.Product
	ProductBySlug(ctx context.Context, slug string) (ProductWithDetail, error)
	Services(ctx context.Context) []store.Service
}

// ProductWithDetail joins a product with its optional care detail record.
// Details is null on the wire when no record exists.
type ProductWithDetail struct {
	store.Product
	Details *store.ProductDetail `json:"details"`
}

type service struct {
	store *store.Store
}

// NewService constructs the catalog service.
func NewService(st *store.Store) (*service, error) {
	if st == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "store required")
	}
	return &service{store: st}, nil
}

func (s *service) Categories(_ context.Context) []store.Category {
	return s.store.Categories()
}

func (s *service) Products(_ context.Context) []store.Product {
	return s.store.Products()
}

// ProductsByCategorySlug resolves the slug first; an unknown slug is a
// not-found outcome rather than an empty list.
func (s *service) ProductsByCategorySlug(_ context.Context, slug string) ([]store.Product, error) {
	category, ok := s.store.CategoryBySlug(slug)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
	}
	return s.store.ProductsByCategory(category.ID), nil
}

func (s *service) FeaturedProducts(_ context.Context) []store.Product {
	return s.store.FeaturedProducts()
}

func (s *service) ProductBySlug(_ context.Context, slug string) (ProductWithDetail, error) {
	product, ok := s.store.ProductBySlug(slug)
	if !ok {
		return ProductWithDetail{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	out := ProductWithDetail{Product: product}
	if detail, ok := s.store.ProductDetailByProduct(product.ID); ok {
		out.Details = &detail
	}
	return out, nil
}

func (s *service) Services(_ context.Context) []store.Service {
	return s.store.Services()
}
