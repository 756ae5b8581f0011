package auth

import (
	"context"
	"errors"

	"github.com/orion-jewellery/storefront/internal/domain"
)

// ErrSessionNotFound is returned when no auth record exists for a session.
var ErrSessionNotFound = errors.New("auth session not found")

// SessionRepository persists auth sessions across process restarts.
// The auth session is the only storefront state that survives a restart.
type SessionRepository interface {
	Get(ctx context.Context, sessionID string) (*domain.AuthSession, error)
	Set(ctx context.Context, sessionID string, session *domain.AuthSession) error
	Delete(ctx context.Context, sessionID string) error
}
