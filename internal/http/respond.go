package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/orion-jewellery/storefront/internal/catalog"
	"github.com/orion-jewellery/storefront/internal/checkout"
	"github.com/orion-jewellery/storefront/internal/stylist"
	logx "github.com/orion-jewellery/storefront/pkg/logger"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logx.Error().Err(err).Msg("failed to encode response")
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// respondServiceError maps domain sentinel errors to HTTP responses.
// Anything unmapped degrades to a generic 500; no failure here is fatal to
// the process.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		respondError(w, http.StatusNotFound, "not_found", "product not found")
	case errors.Is(err, checkout.ErrFlowNotFound):
		respondError(w, http.StatusNotFound, "not_found", "checkout not found")
	case errors.Is(err, checkout.ErrFinalStep):
		respondError(w, http.StatusConflict, "final_step", "checkout is already at the final step")
	case errors.Is(err, checkout.ErrStepAhead):
		respondError(w, http.StatusBadRequest, "step_ahead", "cannot skip ahead in checkout")
	case errors.Is(err, checkout.ErrUnknownStep):
		respondError(w, http.StatusBadRequest, "unknown_step", "unknown checkout step")
	case errors.Is(err, stylist.ErrQuizNotFound):
		respondError(w, http.StatusNotFound, "not_found", "quiz not found")
	case errors.Is(err, stylist.ErrNoSelection):
		respondError(w, http.StatusConflict, "no_selection", "current question has no selection")
	case errors.Is(err, stylist.ErrUnknownOption):
		respondError(w, http.StatusBadRequest, "unknown_option", "option is not one of the current question's choices")
	case errors.Is(err, stylist.ErrNotTakingAnswers):
		respondError(w, http.StatusConflict, "wrong_phase", "quiz is not accepting answers in this phase")
	default:
		logx.Error().Err(err).Msg("unhandled service error")
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
