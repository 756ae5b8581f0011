package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureListProducts(t *testing.T) {
	sut := NewFixtureClient()

	products, err := sut.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 6)
	assert.Equal(t, "Ethereal Diamond Ring", products[0].Name)
	assert.True(t, decimal.NewFromInt(4500).Equal(products[0].Price))
}

func TestFixtureGetProduct(t *testing.T) {
	sut := NewFixtureClient()

	product, err := sut.GetProduct(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Luna Pearl Pendant", product.Name)
	assert.Equal(t, "Necklaces", product.Category)
}

func TestFixtureGetProduct_Unknown(t *testing.T) {
	sut := NewFixtureClient()

	_, err := sut.GetProduct(context.Background(), 999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestFixtureListByCategory(t *testing.T) {
	sut := NewFixtureClient()

	products, err := sut.ListProductsByCategory(context.Background(), "Rings")
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, int64(6), products[1].ID)
}

func TestFixtureListByCategory_AllReturnsEverything(t *testing.T) {
	sut := NewFixtureClient()

	products, err := sut.ListProductsByCategory(context.Background(), CategoryAll)
	require.NoError(t, err)
	assert.Len(t, products, 6)
}

func TestFixtureListByCategory_UnknownIsEmpty(t *testing.T) {
	sut := NewFixtureClient()

	products, err := sut.ListProductsByCategory(context.Background(), "Watches")
	require.NoError(t, err)
	assert.Empty(t, products)
}
