package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/orion-jewellery/storefront/internal/cart"
	"github.com/orion-jewellery/storefront/internal/catalog"
)

type CartHandler struct {
	carts    *cart.Store
	products catalog.Client
	timeout  time.Duration
}

func NewCartHandler(carts *cart.Store, products catalog.Client, timeout time.Duration) *CartHandler {
	return &CartHandler{
		carts:    carts,
		products: products,
		timeout:  timeout,
	}
}

type AddItemRequestDTO struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())
	respondJSON(w, http.StatusOK, h.carts.Get(sessionID))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := sessionIDFromContext(r.Context())

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	// The cart holds product snapshots, so the catalog is consulted once at
	// add time.
	product, err := h.products.GetProduct(ctx, req.ProductID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	// Data mutation first, then the display toggle: adding always reveals
	// the cart panel, but the two stay separate operations.
	h.carts.AddItem(sessionID, *product, req.Quantity)
	updated := h.carts.SetOpen(sessionID, true)

	respondJSON(w, http.StatusCreated, updated)
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())

	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	// Negative quantities clamp to zero in the store; zeroing a line keeps
	// it in the cart.
	updated := h.carts.UpdateQuantity(sessionID, productID, req.Quantity)
	respondJSON(w, http.StatusOK, updated)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())

	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, h.carts.RemoveItem(sessionID, productID))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())
	respondJSON(w, http.StatusOK, h.carts.Clear(sessionID))
}

func (h *CartHandler) ToggleCart(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())
	respondJSON(w, http.StatusOK, h.carts.ToggleOpen(sessionID))
}

func (h *CartHandler) Prune(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())
	respondJSON(w, http.StatusOK, h.carts.PruneZeroQuantity(sessionID))
}

func productIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	productIDStr := chi.URLParam(r, "product_id")
	productID, err := strconv.ParseInt(productIDStr, 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return 0, false
	}
	return productID, true
}
