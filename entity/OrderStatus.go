package entity

// OrderStatus is a closed set. Transition legality lives in the tables
// below; nothing else in the codebase compares status strings.
type OrderStatus string

const (
	StatusPendingPayment OrderStatus = "PendingPayment"
	StatusReceived       OrderStatus = "Received"
	StatusInPreparation  OrderStatus = "InPreparation"
	StatusInDelivery     OrderStatus = "InDelivery"
	StatusCompleted      OrderStatus = "Completed"
	StatusCancelled      OrderStatus = "Cancelled"
)

// forward holds the restaurant-driven progression, one step at a time.
// PendingPayment is absent on purpose: the only way out of it is the
// payment-confirmation guard (to Received) or cancellation.
var forward = map[OrderStatus]OrderStatus{
	StatusReceived:      StatusInPreparation,
	StatusInPreparation: StatusInDelivery,
	StatusInDelivery:    StatusCompleted,
}

// Next returns the next status in the fulfillment flow. ok is false for
// terminal, pending, or unrecognized statuses.
func (s OrderStatus) Next() (OrderStatus, bool) {
	n, ok := forward[s]
	return n, ok
}

// Terminal reports whether no further advancement is expected.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Paid reports whether the order has a confirmed payment behind it.
func (s OrderStatus) Paid() bool {
	switch s {
	case StatusReceived, StatusInPreparation, StatusInDelivery, StatusCompleted:
		return true
	}
	return false
}
