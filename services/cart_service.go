package services

import (
	"errors"

	"github.com/gustavogalazzo/YummyGo/entity"
	"github.com/gustavogalazzo/YummyGo/repository"

	"github.com/shopspring/decimal"
)

var (
	ErrProductUnavailable = errors.New("product not available")
	ErrNotInCart          = errors.New("item not in cart")
)

type CartService struct {
	Store       *repository.CartStore
	ProductRepo *repository.ProductRepository
}

func NewCartService(store *repository.CartStore, products *repository.ProductRepository) *CartService {
	return &CartService{Store: store, ProductRepo: products}
}

// Add puts one unit of the product in the user's cart. A cart only ever
// holds one restaurant: adding from a different one replaces the cart.
// reset reports that replacement so the caller can tell the user.
func (s *CartService) Add(userID, productID uint) (reset bool, err error) {
	p, err := s.ProductRepo.FindByID(productID)
	if err != nil {
		return false, err
	}
	if !p.Available {
		return false, ErrProductUnavailable
	}

	s.Store.Update(userID, func(c *entity.Cart) {
		if c.RestaurantID != 0 && c.RestaurantID != p.RestaurantID {
			*c = entity.NewCart()
			reset = true
		}
		c.RestaurantID = p.RestaurantID
		c.Items[p.ID]++
	})
	return reset, nil
}

// Remove drops the whole line. Emptying the cart also releases the
// restaurant lock. A missing line is reported, not fatal.
func (s *CartService) Remove(userID, productID uint) error {
	found := false
	s.Store.Update(userID, func(c *entity.Cart) {
		if _, ok := c.Items[productID]; !ok {
			return
		}
		found = true
		delete(c.Items, productID)
		if c.Empty() {
			c.RestaurantID = 0
		}
	})
	if !found {
		return ErrNotInCart
	}
	return nil
}

type CartView struct {
	RestaurantID uint            `json:"restaurantId"`
	Lines        []SnapshotLine  `json:"lines"`
	Total        decimal.Decimal `json:"total"`
}

// View resolves the cart against the live catalog. Products that no longer
// exist are skipped; they should not occur, but a stale cart must never
// break the page.
func (s *CartService) View(userID uint) (*CartView, error) {
	c := s.Store.Get(userID)
	view := &CartView{RestaurantID: c.RestaurantID, Total: decimal.Zero}
	if c.Empty() {
		return view, nil
	}

	ids := make([]uint, 0, len(c.Items))
	for id := range c.Items {
		ids = append(ids, id)
	}
	products, err := s.ProductRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}

	for _, p := range products {
		qty := c.Items[p.ID]
		sub := p.Price.Mul(decimal.NewFromInt(int64(qty)))
		view.Lines = append(view.Lines, SnapshotLine{Product: p, Quantity: qty, Subtotal: sub})
		view.Total = view.Total.Add(sub)
	}
	return view, nil
}

func (s *CartService) Clear(userID uint) {
	s.Store.Clear(userID)
}
