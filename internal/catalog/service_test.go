package catalog

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orion-jewellery/storefront/internal/domain"
)

type mockClient struct {
	m        sync.Mutex
	products []domain.Product
	err      error
	calls    int
}

func (m *mockClient) ListProducts(context.Context) ([]domain.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.products, nil
}

func (m *mockClient) GetProduct(_ context.Context, id int64) (*domain.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	for _, p := range m.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, ErrProductNotFound
}

func (m *mockClient) ListProductsByCategory(_ context.Context, category string) ([]domain.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domain.Product, 0)
	for _, p := range m.products {
		if category == CategoryAll || p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockClient) callCount() int {
	m.m.Lock()
	defer m.m.Unlock()
	return m.calls
}

type mockCache struct {
	m        sync.RWMutex
	lists    map[string][]domain.Product
	products map[string]*domain.Product
	err      error
}

func newMockCache() *mockCache {
	return &mockCache{
		lists:    make(map[string][]domain.Product),
		products: make(map[string]*domain.Product),
	}
}

func (m *mockCache) GetList(_ context.Context, key string) ([]domain.Product, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	list, ok := m.lists[key]
	if !ok {
		return nil, ErrCacheMiss
	}
	return list, nil
}

func (m *mockCache) SetList(_ context.Context, key string, products []domain.Product) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	m.lists[key] = products
	return nil
}

func (m *mockCache) GetProduct(_ context.Context, key string) (*domain.Product, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	product, ok := m.products[key]
	if !ok {
		return nil, ErrCacheMiss
	}
	return product, nil
}

func (m *mockCache) SetProduct(_ context.Context, key string, product *domain.Product) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	m.products[key] = product
	return nil
}

func (m *mockCache) hasList(key string) bool {
	m.m.RLock()
	defer m.m.RUnlock()
	_, ok := m.lists[key]
	return ok
}

func (m *mockCache) hasProduct(key string) bool {
	m.m.RLock()
	defer m.m.RUnlock()
	_, ok := m.products[key]
	return ok
}

func ring() domain.Product {
	return domain.Product{ID: 1, Name: "Ethereal Diamond Ring", Price: decimal.NewFromInt(4500), Category: "Rings"}
}

func TestServiceListProducts_MissFetchesAndFillsCache(t *testing.T) {
	client := &mockClient{products: []domain.Product{ring()}}
	cache := newMockCache()

	sut := NewService(client, cache)
	products, err := sut.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(1), products[0].ID)

	require.Eventually(t, func() bool {
		return cache.hasList(keyAllProducts)
	}, 100*time.Millisecond, 10*time.Millisecond, "product list was not set in cache")
}

func TestServiceListProducts_CacheHitSkipsClient(t *testing.T) {
	client := &mockClient{}
	cache := newMockCache()
	cache.lists[keyAllProducts] = []domain.Product{ring()}

	sut := NewService(client, cache)
	products, err := sut.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 0, client.callCount())
}

func TestServiceListProducts_CacheErrorFallsThrough(t *testing.T) {
	client := &mockClient{products: []domain.Product{ring()}}
	cache := newMockCache()
	cache.err = fmt.Errorf("redis down")

	sut := NewService(client, cache)
	products, err := sut.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestServiceListProducts_ClientErrorSurfaces(t *testing.T) {
	client := &mockClient{err: fmt.Errorf("catalog unreachable")}
	cache := newMockCache()

	sut := NewService(client, cache)
	_, err := sut.ListProducts(context.Background())
	require.ErrorContains(t, err, "catalog unreachable")
}

func TestServiceListByCategory_EmptyMeansAll(t *testing.T) {
	client := &mockClient{products: []domain.Product{ring()}}
	cache := newMockCache()

	sut := NewService(client, cache)
	products, err := sut.ListProductsByCategory(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, products, 1)

	require.Eventually(t, func() bool {
		return cache.hasList(keyCategoryPrefix + CategoryAll)
	}, 100*time.Millisecond, 10*time.Millisecond, "category list was not set in cache")
}

func TestServiceGetProduct_MissFetchesAndFillsCache(t *testing.T) {
	client := &mockClient{products: []domain.Product{ring()}}
	cache := newMockCache()

	sut := NewService(client, cache)
	product, err := sut.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Ethereal Diamond Ring", product.Name)

	require.Eventually(t, func() bool {
		return cache.hasProduct(keyProductPrefix + "1")
	}, 100*time.Millisecond, 10*time.Millisecond, "product was not set in cache")
}

func TestServiceGetProduct_NotFoundPassesThrough(t *testing.T) {
	client := &mockClient{products: []domain.Product{ring()}}
	cache := newMockCache()

	sut := NewService(client, cache)
	_, err := sut.GetProduct(context.Background(), 999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestServiceGetProduct_CacheHitSkipsClient(t *testing.T) {
	client := &mockClient{}
	cache := newMockCache()
	cached := ring()
	cache.products[keyProductPrefix+"1"] = &cached

	sut := NewService(client, cache)
	product, err := sut.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), product.ID)
	assert.Equal(t, 0, client.callCount())
}
