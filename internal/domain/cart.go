package domain

import "github.com/shopspring/decimal"

// LineItem is a product snapshot plus the quantity held in the cart.
// A cart holds at most one line item per product ID.
type LineItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Cart is the ordered line-item collection for one storefront session.
// Open is pure display state (whether the cart panel is showing); it carries
// no business meaning.
type Cart struct {
	Items []LineItem `json:"items"`
	Open  bool       `json:"open"`
}

// Subtotal recomputes the price*quantity sum on every call so it reflects
// every prior mutation with no staleness window. Tax and shipping are not
// included.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
