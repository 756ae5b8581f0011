package catalog

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/orion-jewellery/storefront/internal/domain"
)

// FixtureClient serves the built-in jewelry collection from memory. It is
// the fallback catalog used when no commerce API is configured.
type FixtureClient struct {
	products []domain.Product
}

func NewFixtureClient() *FixtureClient {
	return &FixtureClient{products: fixtureProducts()}
}

func (c *FixtureClient) ListProducts(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}

func (c *FixtureClient) GetProduct(_ context.Context, id int64) (*domain.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, ErrProductNotFound
}

func (c *FixtureClient) ListProductsByCategory(_ context.Context, category string) ([]domain.Product, error) {
	if category == "" || category == CategoryAll {
		return c.ListProducts(context.Background())
	}

	out := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func fixtureProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Name:        "Ethereal Diamond Ring",
			Price:       decimal.NewFromInt(4500),
			Category:    "Rings",
			Image:       "https://images.unsplash.com/photo-1605100804763-247f67b3557e?q=80&w=2070&auto=format&fit=crop",
			Description: "A stunning diamond ring.",
		},
		{
			ID:          2,
			Name:        "Celestial Gold Necklace",
			Price:       decimal.NewFromInt(2800),
			Category:    "Necklaces",
			Image:       "https://images.unsplash.com/photo-1599643478518-17488fbbcd75?q=80&w=2070&auto=format&fit=crop",
			Description: "Elegant gold necklace.",
		},
		{
			ID:          3,
			Name:        "Starlight Earrings",
			Price:       decimal.NewFromInt(1200),
			Category:    "Earrings",
			Image:       "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?q=80&w=2070&auto=format&fit=crop",
			Description: "Sparkling earrings.",
		},
		{
			ID:          4,
			Name:        "Orion Sapphire Bracelet",
			Price:       decimal.NewFromInt(3400),
			Category:    "Bracelets",
			Image:       "https://images.unsplash.com/photo-1611591437281-460bfbe1220a?q=80&w=2070&auto=format&fit=crop",
			Description: "Luxury sapphire bracelet.",
		},
		{
			ID:          5,
			Name:        "Luna Pearl Pendant",
			Price:       decimal.NewFromInt(950),
			Category:    "Necklaces",
			Image:       "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?q=80&w=2070&auto=format&fit=crop",
			Description: "Timeless pearl pendant.",
		},
		{
			ID:          6,
			Name:        "Solaris Gold Band",
			Price:       decimal.NewFromInt(1800),
			Category:    "Rings",
			Image:       "https://images.unsplash.com/photo-1603561591411-07134e71a2a9?q=80&w=2080&auto=format&fit=crop",
			Description: "Classic gold band.",
		},
	}
}
