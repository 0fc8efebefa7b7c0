package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/greenkartlabs/greenkart-backend/api/responses"
	catalogsvc "github.com/greenkartlabs/greenkart-backend/internal/catalog"
	pkgerrors "github.com/greenkartlabs/greenkart-backend/pkg/errors"
	"github.com/greenkartlabs/greenkart-backend/pkg/logger"
)

// ListCategories returns every category.
func ListCategories(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		responses.WriteSuccess(w, svc.Categories(r.Context()))
	}
}

// ListProducts returns all products, optionally filtered by the category
// query parameter. An unknown category slug is a 404.
func ListProducts(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		if slug := r.URL.Query().Get("category"); slug != "" {
			products, err := svc.ProductsByCategorySlug(r.Context(), slug)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			responses.WriteSuccess(w, products)
			return
		}

		responses.WriteSuccess(w, svc.Products(r.Context()))
	}
}

// FeaturedProducts returns products flagged for the storefront homepage.
func FeaturedProducts(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		responses.WriteSuccess(w, svc.FeaturedProducts(r.Context()))
	}
}

// ProductBySlug returns one product joined with its care details.
func ProductBySlug(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		product, err := svc.ProductBySlug(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// ListServices returns the gardener service offerings.
func ListServices(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		responses.WriteSuccess(w, svc.Services(r.Context()))
	}
}
