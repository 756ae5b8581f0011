package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/orion-jewellery/storefront/internal/auth"
	"github.com/orion-jewellery/storefront/internal/cart"
	"github.com/orion-jewellery/storefront/internal/catalog"
	"github.com/orion-jewellery/storefront/internal/checkout"
	"github.com/orion-jewellery/storefront/internal/stylist"
)

// newTestRouter assembles the full API against the fixture catalog, fresh
// in-memory stores and a miniredis-backed auth repository.
func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	products := catalog.NewFixtureClient()
	carts := cart.NewStore()
	flows := checkout.NewStore()
	quizzes := stylist.NewStore(20 * time.Millisecond)
	t.Cleanup(quizzes.Close)
	sessions := auth.NewService(auth.NewRedisSessionRepository(client), auth.AllowAllVerifier{})

	timeout := 5 * time.Second
	return NewRouter(Handlers{
		Catalog:  NewCatalogHandler(products, timeout),
		Cart:     NewCartHandler(carts, products, timeout),
		Auth:     NewAuthHandler(sessions, timeout),
		Checkout: NewCheckoutHandler(flows, carts),
		Stylist:  NewStylistHandler(quizzes),
	}, timeout)
}

// doJSON performs a request with a pinned session and decodes the response
// body into out when it is non-nil.
func doJSON(t *testing.T, router *chi.Mux, method, path, sessionID string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("X-Session-ID", sessionID)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	if out != nil && recorder.Code < http.StatusMultipleChoices {
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(out))
	}
	return recorder
}
