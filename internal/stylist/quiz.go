package stylist

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Phase is where a quiz sits in its lifecycle.
type Phase string

const (
	PhaseQuestions Phase = "questions"
	PhaseAnalyzing Phase = "analyzing"
	PhaseResults   Phase = "results"
)

var (
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrNoSelection blocks advancing before the current question is answered.
	ErrNoSelection   = errors.New("current question has no selection")
	ErrUnknownOption = errors.New("option is not one of the current question's choices")
	// ErrNotTakingAnswers covers any question-phase operation attempted
	// during analyzing or results.
	ErrNotTakingAnswers = errors.New("quiz is not accepting answers in this phase")
)

// Question is one step of the fixed stylist questionnaire.
type Question struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

var questions = []Question{
	{
		ID:       1,
		Question: "What is the occasion?",
		Options:  []string{"Everyday Wear", "Special Event", "Gift", "Engagement"},
	},
	{
		ID:       2,
		Question: "Which metal do you prefer?",
		Options:  []string{"Yellow Gold", "White Gold", "Rose Gold", "Platinum"},
	},
	{
		ID:       3,
		Question: "What is your style?",
		Options:  []string{"Classic & Timeless", "Modern & Bold", "Vintage & Romantic", "Minimalist"},
	},
}

// Questions returns the fixed question sequence.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

// Quiz is a snapshot of one session's stylist run.
type Quiz struct {
	Step    int            `json:"step"`
	Answers map[int]string `json:"answers"`
	Phase   Phase          `json:"phase"`
}

// Recommendation is one curated pick shown at the results phase.
type Recommendation struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
	Match int             `json:"match"`
}

// Recommendations returns the curated picks. The selection is fixed; the
// quiz answers drive only the presentation copy.
func Recommendations() []Recommendation {
	return []Recommendation{
		{
			Name:  "Ethereal Diamond Ring",
			Price: decimal.NewFromInt(4500),
			Image: "https://images.unsplash.com/photo-1605100804763-247f67b3557e?q=80&w=2070&auto=format&fit=crop",
			Match: 98,
		},
		{
			Name:  "Celestial Gold Necklace",
			Price: decimal.NewFromInt(2800),
			Image: "https://images.unsplash.com/photo-1599643478518-17488fbbcd75?q=80&w=2070&auto=format&fit=crop",
			Match: 95,
		},
	}
}
