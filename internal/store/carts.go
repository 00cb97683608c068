package store

import (
	"errors"
	"sync"

	"shades-backend/internal/domain"
)

// ErrNoCart is returned by Update when the user has no cart and creation
// was not requested.
var ErrNoCart = errors.New("cart does not exist")

type cartEntry struct {
	mu   sync.Mutex
	cart domain.Cart
}

// Carts owns every user's cart. The map is guarded by mu and each cart by
// its own entry lock, so different users never contend on a mutation.
type Carts struct {
	mu    sync.Mutex
	carts map[string]*cartEntry
}

func NewCarts() *Carts {
	return &Carts{carts: make(map[string]*cartEntry)}
}

func (s *Carts) entry(userID string, create bool) *cartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.carts[userID]
	if !ok && create {
		e = &cartEntry{cart: domain.NewCart()}
		s.carts[userID] = e
	}
	return e
}

// Get returns a copy of the user's cart, creating an empty one first if
// needed.
func (s *Carts) Get(userID string) domain.Cart {
	e := s.entry(userID, true)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cart.Clone()
}

// Update runs fn against a working copy of the user's cart under the
// user's lock. The copy replaces the stored cart only when fn returns nil,
// and the total is recalculated before it is stored. Without create a
// missing cart yields ErrNoCart.
func (s *Carts) Update(userID string, create bool, fn func(*domain.Cart) error) (domain.Cart, error) {
	e := s.entry(userID, create)
	if e == nil {
		return domain.Cart{}, ErrNoCart
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	working := e.cart.Clone()
	if err := fn(&working); err != nil {
		return domain.Cart{}, err
	}
	working.Recalculate()
	e.cart = working
	return working.Clone(), nil
}
