package entity

// Cart is session-scoped, in-memory state. It is deliberately NOT a GORM
// entity: once an order exists the cart stops being a source of truth, and
// losing carts on restart is acceptable.
type Cart struct {
	RestaurantID uint         `json:"restaurantId"`
	Items        map[uint]int `json:"items"` // product id -> quantity
}

func NewCart() Cart {
	return Cart{Items: map[uint]int{}}
}

func (c Cart) Empty() bool {
	return len(c.Items) == 0
}

// Clone returns an independent copy so callers can read-modify-write the
// whole cart without sharing the map with the store.
func (c Cart) Clone() Cart {
	out := Cart{RestaurantID: c.RestaurantID, Items: make(map[uint]int, len(c.Items))}
	for id, qty := range c.Items {
		out.Items[id] = qty
	}
	return out
}
