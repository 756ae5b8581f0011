package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/orion-jewellery/storefront/internal/domain"
)

// Store holds every cart in the process, keyed by storefront session ID.
// All mutations are synchronous and always succeed; a session that has never
// touched its cart simply owns an empty one. Display state (the open flag)
// is mutated through its own operations, never as a side effect of the data
// operations, so callers sequence the two explicitly.
type Store struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

func NewStore() *Store {
	return &Store{
		carts: make(map[string]*domain.Cart),
	}
}

// Get returns a snapshot copy of the session's cart. Callers never alias
// store-owned memory.
func (s *Store) Get(sessionID string) domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cart, exists := s.carts[sessionID]
	if !exists {
		return domain.Cart{Items: []domain.LineItem{}}
	}
	return snapshot(cart)
}

// AddItem puts a product into the cart. If a line item with the same product
// ID already exists its quantity grows by exactly 1 and any larger requested
// quantity is discarded; a new line item always starts at quantity 1. This
// matches the storefront's current merge behavior, which accepts a quantity
// but never applies it (pinned by TestAddItem_RequestedQuantityDiscarded,
// pending product-owner clarification).
func (s *Store) AddItem(sessionID string, product domain.Product, quantity int) domain.Cart {
	_ = quantity

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart(sessionID)
	for i := range cart.Items {
		if cart.Items[i].ID == product.ID {
			cart.Items[i].Quantity++
			return snapshot(cart)
		}
	}

	cart.Items = append(cart.Items, domain.LineItem{Product: product, Quantity: 1})
	return snapshot(cart)
}

// RemoveItem deletes the line item with the given product ID. Removing an
// absent ID is a no-op, not an error.
func (s *Store) RemoveItem(sessionID string, productID int64) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart(sessionID)
	for i, item := range cart.Items {
		if item.ID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			break
		}
	}
	return snapshot(cart)
}

// UpdateQuantity sets the line item's quantity to max(0, quantity). A line
// item driven to zero stays in the cart until removed or pruned.
func (s *Store) UpdateQuantity(sessionID string, productID int64, quantity int) domain.Cart {
	if quantity < 0 {
		quantity = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart(sessionID)
	for i := range cart.Items {
		if cart.Items[i].ID == productID {
			cart.Items[i].Quantity = quantity
			break
		}
	}
	return snapshot(cart)
}

// PruneZeroQuantity drops every zero-quantity line item. Opt-in: nothing in
// the standard mutation surface calls it.
func (s *Store) PruneZeroQuantity(sessionID string) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart(sessionID)
	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.Quantity > 0 {
			kept = append(kept, item)
		}
	}
	cart.Items = kept
	return snapshot(cart)
}

// SetOpen sets the cart panel display flag.
func (s *Store) SetOpen(sessionID string, open bool) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart(sessionID)
	cart.Open = open
	return snapshot(cart)
}

// ToggleOpen flips the cart panel display flag.
func (s *Store) ToggleOpen(sessionID string) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart(sessionID)
	cart.Open = !cart.Open
	return snapshot(cart)
}

// Clear empties the line-item collection unconditionally.
func (s *Store) Clear(sessionID string) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart(sessionID)
	cart.Items = []domain.LineItem{}
	return snapshot(cart)
}

// Subtotal is the live price*quantity sum for the session's cart.
func (s *Store) Subtotal(sessionID string) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cart, exists := s.carts[sessionID]
	if !exists {
		return decimal.Zero
	}
	return cart.Subtotal()
}

// cart returns the session's cart, creating an empty one on first touch.
// Callers must hold the write lock.
func (s *Store) cart(sessionID string) *domain.Cart {
	cart, exists := s.carts[sessionID]
	if !exists {
		cart = &domain.Cart{Items: []domain.LineItem{}}
		s.carts[sessionID] = cart
	}
	return cart
}

func snapshot(cart *domain.Cart) domain.Cart {
	items := make([]domain.LineItem, len(cart.Items))
	copy(items, cart.Items)
	return domain.Cart{Items: items, Open: cart.Open}
}
