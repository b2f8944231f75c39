package repository

import (
	"sync"
	"testing"

	"github.com/gustavogalazzo/YummyGo/entity"
)

func TestCartStoreConcurrentUpdatesAreNotLost(t *testing.T) {
	store := NewCartStore()
	const workers = 8
	const perWorker = 50

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				store.Update(1, func(c *entity.Cart) {
					c.RestaurantID = 7
					c.Items[42]++
				})
			}
		}()
	}
	wg.Wait()

	c := store.Get(1)
	if c.Items[42] != workers*perWorker {
		t.Errorf("quantity = %d, want %d", c.Items[42], workers*perWorker)
	}
}

func TestCartStoreGetReturnsACopy(t *testing.T) {
	store := NewCartStore()
	store.Update(1, func(c *entity.Cart) {
		c.RestaurantID = 7
		c.Items[42] = 2
	})

	c := store.Get(1)
	c.Items[42] = 999

	if got := store.Get(1).Items[42]; got != 2 {
		t.Errorf("mutating the returned cart leaked into the store: %d", got)
	}
}

func TestCartStoreClear(t *testing.T) {
	store := NewCartStore()
	store.Update(1, func(c *entity.Cart) { c.Items[42] = 1 })
	store.Clear(1)

	if !store.Get(1).Empty() {
		t.Error("cart must be empty after Clear")
	}
}
