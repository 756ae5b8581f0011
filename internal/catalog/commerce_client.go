package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/orion-jewellery/storefront/internal/domain"
)

// CommerceClient reads the catalog from a WooCommerce-style HTTP API.
// Authentication uses consumer key/secret query parameters. Requests are not
// retried and responses are never reconciled against newer requests; the
// caller's context is the only cancellation hook.
type CommerceClient struct {
	baseURL        string
	consumerKey    string
	consumerSecret string
	httpClient     *http.Client
}

func NewCommerceClient(baseURL, consumerKey, consumerSecret string, timeout time.Duration) *CommerceClient {
	return &CommerceClient{
		baseURL:        baseURL,
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// wireProduct mirrors the commerce API's product JSON.
type wireProduct struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	Price        json.Number `json:"price"`
	RegularPrice string      `json:"regular_price"`
	Categories   []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"categories"`
	Images []struct {
		Src string `json:"src"`
	} `json:"images"`
	Description string `json:"description"`
}

func (c *CommerceClient) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var wire []wireProduct
	if err := c.get(ctx, "/products", nil, &wire); err != nil {
		return nil, err
	}
	return mapProducts(wire)
}

func (c *CommerceClient) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	var wire wireProduct
	if err := c.get(ctx, fmt.Sprintf("/products/%d", id), nil, &wire); err != nil {
		return nil, err
	}
	product, err := mapProduct(wire)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *CommerceClient) ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	if category == "" || category == CategoryAll {
		return c.ListProducts(ctx)
	}

	query := url.Values{}
	query.Set("category", category)

	var wire []wireProduct
	if err := c.get(ctx, "/products", query, &wire); err != nil {
		return nil, err
	}
	return mapProducts(wire)
}

func (c *CommerceClient) get(ctx context.Context, path string, query url.Values, out any) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("build catalog url: %w", err)
	}

	q := u.Query()
	for key, values := range query {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	q.Set("consumer_key", c.consumerKey)
	q.Set("consumer_secret", c.consumerSecret)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrProductNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("catalog returned unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode catalog response: %w", err)
	}
	return nil
}

func mapProducts(wire []wireProduct) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(wire))
	for _, w := range wire {
		product, err := mapProduct(w)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

func mapProduct(w wireProduct) (domain.Product, error) {
	raw := w.Price.String()
	if raw == "" {
		raw = w.RegularPrice
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return domain.Product{}, fmt.Errorf("parse price for product %d: %w", w.ID, err)
	}

	product := domain.Product{
		ID:          w.ID,
		Name:        w.Name,
		Price:       price,
		Description: w.Description,
	}
	if len(w.Categories) > 0 {
		product.Category = w.Categories[0].Name
	}
	if len(w.Images) > 0 {
		product.Image = w.Images[0].Src
	}
	return product, nil
}
