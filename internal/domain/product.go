package domain

import "github.com/shopspring/decimal"

// Product is a catalog entry as served by the commerce API. Products are
// immutable once fetched; the storefront never mutates them locally.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Description string          `json:"description,omitempty"`
}
