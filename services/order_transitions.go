package services

import (
	"errors"

	"github.com/gustavogalazzo/YummyGo/entity"

	"gorm.io/gorm"
)

var (
	// ErrOrderFinal is informational: the order is already at its last stop.
	ErrOrderFinal = errors.New("order already in final status")
	// ErrNotAdvanceable covers PendingPayment and any status not in the
	// fulfillment flow (defensive fallback for unrecognized values).
	ErrNotAdvanceable = errors.New("order cannot be advanced from its current status")
	// ErrConflict means the guarded update found the status already moved;
	// someone else advanced first.
	ErrConflict = errors.New("order status changed, refresh and retry")
)

// Advance moves the order one step along Received -> InPreparation ->
// InDelivery -> Completed. Owner-only; strictly sequential via the guarded
// update, so racing staff clicks resolve to one winner per step.
func (s *OrderService) Advance(ownerID, orderID uint) (entity.OrderStatus, error) {
	var advancedTo entity.OrderStatus
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(orderID)
		if err != nil {
			return err
		}
		ok, err := s.RestRepo.IsOwnedBy(o.RestaurantID, ownerID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrForbidden
		}

		if o.Status.Terminal() {
			return ErrOrderFinal
		}
		next, ok := o.Status.Next()
		if !ok {
			return ErrNotAdvanceable
		}

		affected, err := s.Repo.AdvanceGuard(tx, o.ID, o.Status, next)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}
		advancedTo = next
		return nil
	})
	return advancedTo, err
}

// Cancel abandons an unpaid order. Cancelled is reachable only from
// PendingPayment; there is deliberately no cancellation path once the
// restaurant has the order.
func (s *OrderService) Cancel(ownerID, orderID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(orderID)
		if err != nil {
			return err
		}
		ok, err := s.RestRepo.IsOwnedBy(o.RestaurantID, ownerID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrForbidden
		}

		affected, err := s.Repo.AdvanceGuard(tx, o.ID, entity.StatusPendingPayment, entity.StatusCancelled)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}
		return nil
	})
}
