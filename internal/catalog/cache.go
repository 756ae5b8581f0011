package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/orion-jewellery/storefront/internal/domain"
)

// ErrCacheMiss is returned when the cache has no entry for a key.
var ErrCacheMiss = errors.New("cache miss")

// Cache keeps catalog reads off the commerce API. Misses are not errors;
// failures are logged by the caller and the API is consulted directly.
type Cache interface {
	GetList(ctx context.Context, key string) ([]domain.Product, error)
	SetList(ctx context.Context, key string, products []domain.Product) error
	GetProduct(ctx context.Context, key string) (*domain.Product, error)
	SetProduct(ctx context.Context, key string, product *domain.Product) error
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client:  client,
		baseTTL: 15 * time.Minute,
	}
}

type RedisCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func (r *RedisCache) GetList(ctx context.Context, key string) ([]domain.Product, error) {
	data, err := r.get(ctx, key)
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("unmarshal product list failed: %w", err)
	}
	return products, nil
}

func (r *RedisCache) SetList(ctx context.Context, key string, products []domain.Product) error {
	return r.set(ctx, key, products)
}

func (r *RedisCache) GetProduct(ctx context.Context, key string) (*domain.Product, error) {
	data, err := r.get(ctx, key)
	if err != nil {
		return nil, err
	}

	var product domain.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, fmt.Errorf("unmarshal product failed: %w", err)
	}
	return &product, nil
}

func (r *RedisCache) SetProduct(ctx context.Context, key string, product *domain.Product) error {
	return r.set(ctx, key, product)
}

func (r *RedisCache) get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return data, nil
}

func (r *RedisCache) set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value failed: %w", err)
	}

	// Jitter spreads expiry so a whole catalog never falls out at once.
	ttl := r.baseTTL + time.Duration(rand.Intn(5))*time.Minute
	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}
