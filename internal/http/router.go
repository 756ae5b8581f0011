package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Catalog  *CatalogHandler
	Cart     *CartHandler
	Auth     *AuthHandler
	Checkout *CheckoutHandler
	Stylist  *StylistHandler
}

// NewRouter wires the storefront API. Route paths mirror the storefront's
// navigational surface: shop, product detail, cart, checkout, login and the
// stylist quiz.
func NewRouter(h Handlers, requestTimeout time.Duration) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(SessionMiddleware)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.Catalog.List)
			r.Get("/{id}", h.Catalog.Get)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.Cart.GetCart)
			r.Delete("/", h.Cart.ClearCart)
			r.Post("/items", h.Cart.AddItem)
			r.Put("/items/{product_id}", h.Cart.UpdateQuantity)
			r.Delete("/items/{product_id}", h.Cart.RemoveItem)
			r.Post("/toggle", h.Cart.ToggleCart)
			r.Post("/prune", h.Cart.Prune)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/logout", h.Auth.Logout)
			r.Get("/me", h.Auth.Me)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/", h.Checkout.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Checkout.Get)
				r.Put("/", h.Checkout.UpdateDraft)
				r.Delete("/", h.Checkout.Abandon)
				r.Post("/advance", h.Checkout.Advance)
				r.Post("/step", h.Checkout.GoToStep)
			})
		})

		r.Route("/stylist", func(r chi.Router) {
			r.Post("/", h.Stylist.Start)
			r.Get("/", h.Stylist.Get)
			r.Post("/answer", h.Stylist.Answer)
			r.Post("/advance", h.Stylist.Advance)
			r.Post("/back", h.Stylist.GoBack)
			r.Post("/restart", h.Stylist.Restart)
		})
	})

	return r
}
