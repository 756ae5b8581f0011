package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orion-jewellery/storefront/internal/stylist"
)

func TestStartQuiz_OpensAtFirstQuestion(t *testing.T) {
	router := newTestRouter(t)

	var got QuizResponseDTO
	rec := doJSON(t, router, http.MethodPost, "/api/v1/stylist/", "s1", nil, &got)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 0, got.Quiz.Step)
	assert.Equal(t, stylist.PhaseQuestions, got.Quiz.Phase)
	assert.Len(t, got.Questions, 3)
	assert.Empty(t, got.Recommendations)
}

func TestGetQuiz_WithoutStartReturnsNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/stylist/", "s1", nil, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAnswer_RecordsSelectionForCurrentStep(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/v1/stylist/", "s1", nil, nil)

	var got QuizResponseDTO
	rec := doJSON(t, router, http.MethodPost, "/api/v1/stylist/answer", "s1", AnswerRequestDTO{Option: "Gift"}, &got)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Gift", got.Quiz.Answers[0])
}

func TestAnswer_UnknownOptionIsRejected(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/v1/stylist/", "s1", nil, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/stylist/answer", "s1", AnswerRequestDTO{Option: "Titanium"}, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdvance_WithoutSelectionConflicts(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/v1/stylist/", "s1", nil, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/stylist/advance", "s1", nil, nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestQuiz_FullWalkReachesResultsWithRecommendations(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/v1/stylist/", "s1", nil, nil)

	answers := []string{"Engagement", "Platinum", "Minimalist"}
	var got QuizResponseDTO
	for _, option := range answers {
		doJSON(t, router, http.MethodPost, "/api/v1/stylist/answer", "s1", AnswerRequestDTO{Option: option}, nil)
		doJSON(t, router, http.MethodPost, "/api/v1/stylist/advance", "s1", nil, &got)
	}
	assert.Equal(t, stylist.PhaseAnalyzing, got.Quiz.Phase)

	require.Eventually(t, func() bool {
		var state QuizResponseDTO
		doJSON(t, router, http.MethodGet, "/api/v1/stylist/", "s1", nil, &state)
		return state.Quiz.Phase == stylist.PhaseResults
	}, time.Second, 10*time.Millisecond)

	var final QuizResponseDTO
	doJSON(t, router, http.MethodGet, "/api/v1/stylist/", "s1", nil, &final)
	require.Len(t, final.Recommendations, 2)
	assert.Equal(t, 98, final.Recommendations[0].Match)
	assert.Equal(t, 95, final.Recommendations[1].Match)
}

func TestGoBack_StopsAtFirstQuestion(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/v1/stylist/", "s1", nil, nil)

	var got QuizResponseDTO
	rec := doJSON(t, router, http.MethodPost, "/api/v1/stylist/back", "s1", nil, &got)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, got.Quiz.Step)
}

func TestRestart_ResetsToFirstQuestion(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/v1/stylist/", "s1", nil, nil)
	doJSON(t, router, http.MethodPost, "/api/v1/stylist/answer", "s1", AnswerRequestDTO{Option: "Gift"}, nil)
	doJSON(t, router, http.MethodPost, "/api/v1/stylist/advance", "s1", nil, nil)

	var got QuizResponseDTO
	rec := doJSON(t, router, http.MethodPost, "/api/v1/stylist/restart", "s1", nil, &got)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, got.Quiz.Step)
	assert.Empty(t, got.Quiz.Answers)
	assert.Equal(t, stylist.PhaseQuestions, got.Quiz.Phase)
}
