package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/orion-jewellery/storefront/internal/domain"
)

// Service owns the auth session lifecycle for storefront sessions.
type Service struct {
	sessions SessionRepository
	verifier CredentialVerifier
}

func NewService(sessions SessionRepository, verifier CredentialVerifier) *Service {
	return &Service{
		sessions: sessions,
		verifier: verifier,
	}
}

// Login verifies the email and persists an authenticated session with the
// fixed-shape identity record tied to it.
func (s *Service) Login(ctx context.Context, sessionID, email string) (*domain.AuthSession, error) {
	if err := s.verifier.Verify(ctx, email); err != nil {
		return nil, fmt.Errorf("verify credentials: %w", err)
	}

	session := &domain.AuthSession{
		User: &domain.User{
			ID:        "1",
			FirstName: "Isabella",
			LastName:  "Ross",
			Email:     email,
		},
		IsAuthenticated: true,
	}

	if err := s.sessions.Set(ctx, sessionID, session); err != nil {
		return nil, fmt.Errorf("persist auth session: %w", err)
	}

	return session, nil
}

// Logout clears identity and flag together by deleting the record.
// Logging out an already signed-out session is a no-op with the same result.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	err := s.sessions.Delete(ctx, sessionID)
	if errors.Is(err, ErrSessionNotFound) {
		return nil
	}
	return err
}

// Current returns the restored session, or a signed-out zero value when none
// was ever created.
func (s *Service) Current(ctx context.Context, sessionID string) (*domain.AuthSession, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if errors.Is(err, ErrSessionNotFound) {
		return &domain.AuthSession{}, nil
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}
