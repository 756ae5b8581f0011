package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/orion-jewellery/storefront/internal/domain"
)

// RedisSessionRepository stores auth sessions as JSON records under a fixed
// key namespace. Records carry no TTL: the session lives until logout.
type RedisSessionRepository struct {
	client *redis.Client
}

func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

func (r *RedisSessionRepository) Get(ctx context.Context, sessionID string) (*domain.AuthSession, error) {
	data, err := r.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var session domain.AuthSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("unmarshal auth session failed: %w", err)
	}

	return &session, nil
}

func (r *RedisSessionRepository) Set(ctx context.Context, sessionID string, session *domain.AuthSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal auth session failed: %w", err)
	}

	if err := r.client.Set(ctx, sessionKey(sessionID), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisSessionRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("orion:auth:%s", sessionID)
}
