package repository

import (
	"sync"

	"github.com/gustavogalazzo/YummyGo/entity"
)

// CartStore keeps one cart per session key (the authenticated user id).
// Ephemeral on purpose; see entity.Cart. All accessors copy the whole cart
// so rapid sequential mutations never apply a stale partial update.
type CartStore struct {
	mu    sync.RWMutex
	carts map[uint]entity.Cart
}

func NewCartStore() *CartStore {
	return &CartStore{carts: map[uint]entity.Cart{}}
}

func (s *CartStore) Get(userID uint) entity.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.carts[userID]
	if !ok {
		return entity.NewCart()
	}
	return c.Clone()
}

// Update applies fn to a copy of the current cart and swaps the result in
// under the write lock.
func (s *CartStore) Update(userID uint, fn func(c *entity.Cart)) entity.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[userID]
	if !ok {
		c = entity.NewCart()
	} else {
		c = c.Clone()
	}
	fn(&c)
	s.carts[userID] = c
	return c.Clone()
}

func (s *CartStore) Clear(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}
