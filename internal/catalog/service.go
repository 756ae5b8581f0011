package catalog

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/orion-jewellery/storefront/internal/domain"
	logx "github.com/orion-jewellery/storefront/pkg/logger"
)

const (
	keyAllProducts    = "catalog:products"
	keyCategoryPrefix = "catalog:category:"
	keyProductPrefix  = "catalog:product:"
)

// Service is a read-through cached view of the catalog. Cache failures are
// logged and skipped so a degraded cache never blocks a catalog read. It
// implements Client, so callers cannot tell it from the raw API.
type Service struct {
	client Client
	cache  Cache
	sfg    singleflight.Group // Prevents cache stampede
}

func NewService(client Client, cache Cache) *Service {
	return &Service{
		client: client,
		cache:  cache,
	}
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.listThrough(ctx, keyAllProducts, s.client.ListProducts)
}

func (s *Service) ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	if category == "" {
		category = CategoryAll
	}
	return s.listThrough(ctx, keyCategoryPrefix+category, func(ctx context.Context) ([]domain.Product, error) {
		return s.client.ListProductsByCategory(ctx, category)
	})
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	key := fmt.Sprintf("%s%d", keyProductPrefix, id)

	// Collapse concurrent misses for the same product into one API call.
	v, err, _ := s.sfg.Do(key, func() (interface{}, error) {
		cached, err := s.cache.GetProduct(ctx, key)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			logx.Warn().Err(err).Str("key", key).Msg("catalog cache get failed")
		}

		product, err := s.client.GetProduct(ctx, id)
		if err != nil {
			return nil, err
		}

		go func() {
			if err := s.cache.SetProduct(context.Background(), key, product); err != nil {
				logx.Warn().Err(err).Str("key", key).Msg("catalog cache set failed")
			}
		}()

		return product, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*domain.Product), nil
}

func (s *Service) listThrough(ctx context.Context, key string, fetch func(context.Context) ([]domain.Product, error)) ([]domain.Product, error) {
	v, err, _ := s.sfg.Do(key, func() (interface{}, error) {
		cached, err := s.cache.GetList(ctx, key)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			logx.Warn().Err(err).Str("key", key).Msg("catalog cache get failed")
		}

		products, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		go func() {
			if err := s.cache.SetList(context.Background(), key, products); err != nil {
				logx.Warn().Err(err).Str("key", key).Msg("catalog cache set failed")
			}
		}()

		return products, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]domain.Product), nil
}
