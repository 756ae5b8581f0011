package checkout

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds in-flight checkout flows by ID. Flows are transient: they are
// discarded on abandon and never written to durable storage.
type Store struct {
	mu    sync.RWMutex
	flows map[string]*Flow
}

func NewStore() *Store {
	return &Store{
		flows: make(map[string]*Flow),
	}
}

// Create starts a new flow at the information step for the given session.
func (s *Store) Create(sessionID string) Flow {
	flow := &Flow{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Step:      StepInformation,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.flows[flow.ID] = flow
	return *flow
}

func (s *Store) Get(id string) (Flow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	flow, exists := s.flows[id]
	if !exists {
		return Flow{}, ErrFlowNotFound
	}
	return *flow, nil
}

// UpdateDraft replaces the flow's collected fields wholesale.
func (s *Store) UpdateDraft(id string, draft Draft) (Flow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	flow, exists := s.flows[id]
	if !exists {
		return Flow{}, ErrFlowNotFound
	}
	flow.Draft = draft
	return *flow, nil
}

func (s *Store) Advance(id string) (Flow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	flow, exists := s.flows[id]
	if !exists {
		return Flow{}, ErrFlowNotFound
	}
	if err := flow.Advance(); err != nil {
		return Flow{}, err
	}
	return *flow, nil
}

func (s *Store) GoTo(id string, step Step) (Flow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	flow, exists := s.flows[id]
	if !exists {
		return Flow{}, ErrFlowNotFound
	}
	if err := flow.GoTo(step); err != nil {
		return Flow{}, err
	}
	return *flow, nil
}

// Abandon discards the flow. Abandoning an unknown ID is a no-op; navigating
// away is best-effort.
func (s *Store) Abandon(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.flows, id)
}
