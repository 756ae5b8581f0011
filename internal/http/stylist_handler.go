package http

import (
	"encoding/json"
	"net/http"

	"github.com/orion-jewellery/storefront/internal/stylist"
)

type StylistHandler struct {
	quizzes *stylist.Store
}

func NewStylistHandler(quizzes *stylist.Store) *StylistHandler {
	return &StylistHandler{quizzes: quizzes}
}

// QuizResponseDTO bundles the quiz state with the fixed questionnaire, and
// the curated picks once the results phase is reached.
type QuizResponseDTO struct {
	Quiz            stylist.Quiz             `json:"quiz"`
	Questions       []stylist.Question       `json:"questions"`
	Recommendations []stylist.Recommendation `json:"recommendations,omitempty"`
}

type AnswerRequestDTO struct {
	Option string `json:"option"`
}

func (h *StylistHandler) Start(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())
	respondJSON(w, http.StatusCreated, buildQuizResponse(h.quizzes.Start(sessionID)))
}

func (h *StylistHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())

	quiz, err := h.quizzes.Get(sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, buildQuizResponse(quiz))
}

func (h *StylistHandler) Answer(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())

	var req AnswerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Option == "" {
		respondError(w, http.StatusBadRequest, "invalid_option", "option is required")
		return
	}

	quiz, err := h.quizzes.SelectOption(sessionID, req.Option)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, buildQuizResponse(quiz))
}

func (h *StylistHandler) Advance(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())

	quiz, err := h.quizzes.Advance(sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, buildQuizResponse(quiz))
}

func (h *StylistHandler) GoBack(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())

	quiz, err := h.quizzes.GoBack(sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, buildQuizResponse(quiz))
}

func (h *StylistHandler) Restart(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())

	quiz, err := h.quizzes.Restart(sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, buildQuizResponse(quiz))
}

func buildQuizResponse(quiz stylist.Quiz) QuizResponseDTO {
	resp := QuizResponseDTO{
		Quiz:      quiz,
		Questions: stylist.Questions(),
	}
	if quiz.Phase == stylist.PhaseResults {
		resp.Recommendations = stylist.Recommendations()
	}
	return resp
}
