package stylist

import (
	"sync"
	"time"
)

// DefaultAnalyzeDelay is how long a finished quiz sits in the analyzing
// phase before results appear.
const DefaultAnalyzeDelay = 2 * time.Second

type quizState struct {
	quiz  Quiz
	timer *time.Timer
}

// Store holds each session's quiz in memory. Nothing here persists; a quiz
// lives until restarted or the process exits.
type Store struct {
	mu           sync.Mutex
	quizzes      map[string]*quizState
	analyzeDelay time.Duration
}

func NewStore(analyzeDelay time.Duration) *Store {
	if analyzeDelay <= 0 {
		analyzeDelay = DefaultAnalyzeDelay
	}
	return &Store{
		quizzes:      make(map[string]*quizState),
		analyzeDelay: analyzeDelay,
	}
}

// Start creates a fresh quiz for the session, replacing any existing one.
func (s *Store) Start(sessionID string) Quiz {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state, exists := s.quizzes[sessionID]; exists && state.timer != nil {
		state.timer.Stop()
	}

	state := &quizState{quiz: newQuiz()}
	s.quizzes[sessionID] = state
	return snapshot(state.quiz)
}

func (s *Store) Get(sessionID string) (Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, exists := s.quizzes[sessionID]
	if !exists {
		return Quiz{}, ErrQuizNotFound
	}
	return snapshot(state.quiz), nil
}

// SelectOption records the answer for the current question. Reselecting
// overwrites; selecting the same option again is an idempotent no-op.
func (s *Store) SelectOption(sessionID, option string) (Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, exists := s.quizzes[sessionID]
	if !exists {
		return Quiz{}, ErrQuizNotFound
	}
	if state.quiz.Phase != PhaseQuestions {
		return Quiz{}, ErrNotTakingAnswers
	}

	if !validOption(state.quiz.Step, option) {
		return Quiz{}, ErrUnknownOption
	}

	state.quiz.Answers[state.quiz.Step] = option
	return snapshot(state.quiz), nil
}

// Advance moves to the next question, or on the last question enters the
// analyzing phase and schedules the transition to results.
func (s *Store) Advance(sessionID string) (Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, exists := s.quizzes[sessionID]
	if !exists {
		return Quiz{}, ErrQuizNotFound
	}
	if state.quiz.Phase != PhaseQuestions {
		return Quiz{}, ErrNotTakingAnswers
	}
	if _, answered := state.quiz.Answers[state.quiz.Step]; !answered {
		return Quiz{}, ErrNoSelection
	}

	if state.quiz.Step < len(questions)-1 {
		state.quiz.Step++
		return snapshot(state.quiz), nil
	}

	state.quiz.Phase = PhaseAnalyzing
	state.timer = time.AfterFunc(s.analyzeDelay, func() {
		s.finishAnalysis(sessionID)
	})
	return snapshot(state.quiz), nil
}

// GoBack steps to the previous question, flooring at the first one.
func (s *Store) GoBack(sessionID string) (Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, exists := s.quizzes[sessionID]
	if !exists {
		return Quiz{}, ErrQuizNotFound
	}
	if state.quiz.Phase != PhaseQuestions {
		return Quiz{}, ErrNotTakingAnswers
	}

	if state.quiz.Step > 0 {
		state.quiz.Step--
	}
	return snapshot(state.quiz), nil
}

// Restart resets the quiz to its initial state from any phase, cancelling a
// pending analysis if one is running.
func (s *Store) Restart(sessionID string) (Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, exists := s.quizzes[sessionID]
	if !exists {
		return Quiz{}, ErrQuizNotFound
	}
	if state.timer != nil {
		state.timer.Stop()
		state.timer = nil
	}

	state.quiz = newQuiz()
	return snapshot(state.quiz), nil
}

// Close cancels every pending analysis timer.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, state := range s.quizzes {
		if state.timer != nil {
			state.timer.Stop()
			state.timer = nil
		}
	}
}

func (s *Store) finishAnalysis(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, exists := s.quizzes[sessionID]
	if !exists || state.quiz.Phase != PhaseAnalyzing {
		// Restarted or discarded while the timer was pending.
		return
	}
	state.quiz.Phase = PhaseResults
	state.timer = nil
}

func newQuiz() Quiz {
	return Quiz{
		Step:    0,
		Answers: make(map[int]string),
		Phase:   PhaseQuestions,
	}
}

func validOption(step int, option string) bool {
	for _, o := range questions[step].Options {
		if o == option {
			return true
		}
	}
	return false
}

func snapshot(q Quiz) Quiz {
	answers := make(map[int]string, len(q.Answers))
	for k, v := range q.Answers {
		answers[k] = v
	}
	q.Answers = answers
	return q
}
