package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/orion-jewellery/storefront/internal/catalog"
)

type CatalogHandler struct {
	products catalog.Client
	timeout  time.Duration
}

func NewCatalogHandler(products catalog.Client, timeout time.Duration) *CatalogHandler {
	return &CatalogHandler{
		products: products,
		timeout:  timeout,
	}
}

// List serves the shop view. The optional category query parameter filters
// the list; "All" (or no parameter) returns everything.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var err error
	var products interface{}
	if category := r.URL.Query().Get("category"); category != "" {
		products, err = h.products.ListProductsByCategory(ctx, category)
	} else {
		products, err = h.products.ListProducts(ctx)
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "id must be a positive integer")
		return
	}

	product, err := h.products.GetProduct(ctx, id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}
