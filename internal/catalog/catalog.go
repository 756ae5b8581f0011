package catalog

import (
	"context"
	"errors"

	"github.com/orion-jewellery/storefront/internal/domain"
)

// CategoryAll is the pseudo-category that matches every product.
const CategoryAll = "All"

// ErrProductNotFound is returned when the catalog has no product for an ID.
var ErrProductNotFound = errors.New("product not found")

// Client reads product data from the external catalog. The catalog is the
// system of record; the storefront never writes to it.
type Client interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
}
