package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/orion-jewellery/storefront/internal/cart"
	"github.com/orion-jewellery/storefront/internal/checkout"
	"github.com/orion-jewellery/storefront/internal/domain"
)

type CheckoutHandler struct {
	flows *checkout.Store
	carts *cart.Store
}

func NewCheckoutHandler(flows *checkout.Store, carts *cart.Store) *CheckoutHandler {
	return &CheckoutHandler{
		flows: flows,
		carts: carts,
	}
}

// CheckoutResponseDTO is a wizard snapshot plus the live order summary. The
// summary reads the cart at response time, so cart mutations made mid-wizard
// always show up on the next read.
type CheckoutResponseDTO struct {
	ID     string            `json:"id"`
	Step   checkout.Step     `json:"step"`
	Draft  checkout.Draft    `json:"draft"`
	Items  []domain.LineItem `json:"items"`
	Totals checkout.Totals   `json:"totals"`
}

type GoToStepRequestDTO struct {
	Step checkout.Step `json:"step"`
}

func (h *CheckoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())

	flow := h.flows.Create(sessionID)
	respondJSON(w, http.StatusCreated, h.summarize(flow))
}

func (h *CheckoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	flow, ok := h.ownedFlow(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, h.summarize(flow))
}

func (h *CheckoutHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	flow, ok := h.ownedFlow(w, r)
	if !ok {
		return
	}

	var draft checkout.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	updated, err := h.flows.UpdateDraft(flow.ID, draft)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, h.summarize(updated))
}

func (h *CheckoutHandler) Advance(w http.ResponseWriter, r *http.Request) {
	flow, ok := h.ownedFlow(w, r)
	if !ok {
		return
	}

	updated, err := h.flows.Advance(flow.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, h.summarize(updated))
}

func (h *CheckoutHandler) GoToStep(w http.ResponseWriter, r *http.Request) {
	flow, ok := h.ownedFlow(w, r)
	if !ok {
		return
	}

	var req GoToStepRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	updated, err := h.flows.GoTo(flow.ID, req.Step)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, h.summarize(updated))
}

func (h *CheckoutHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	flow, ok := h.ownedFlow(w, r)
	if !ok {
		return
	}

	h.flows.Abandon(flow.ID)
	w.WriteHeader(http.StatusNoContent)
}

// ownedFlow loads the flow from the URL and hides other sessions' flows
// behind a generic not found.
func (h *CheckoutHandler) ownedFlow(w http.ResponseWriter, r *http.Request) (checkout.Flow, bool) {
	id := chi.URLParam(r, "id")

	flow, err := h.flows.Get(id)
	if err != nil {
		respondServiceError(w, err)
		return checkout.Flow{}, false
	}
	if flow.SessionID != sessionIDFromContext(r.Context()) {
		respondError(w, http.StatusNotFound, "not_found", "checkout not found")
		return checkout.Flow{}, false
	}
	return flow, true
}

func (h *CheckoutHandler) summarize(flow checkout.Flow) CheckoutResponseDTO {
	snapshot := h.carts.Get(flow.SessionID)
	return CheckoutResponseDTO{
		ID:     flow.ID,
		Step:   flow.Step,
		Draft:  flow.Draft,
		Items:  snapshot.Items,
		Totals: checkout.ComputeTotals(snapshot.Subtotal()),
	}
}
