package services

import (
	"testing"

	"github.com/gustavogalazzo/YummyGo/entity"
	"github.com/gustavogalazzo/YummyGo/repository"
)

func (f *fixture) completedOrder(t *testing.T) entity.Order {
	t.Helper()
	o := entity.Order{
		Ref: "done-1", CustomerID: f.customer.ID, RestaurantID: f.restaurant.ID,
		TotalPrice: dec("55.00"), Status: entity.StatusCompleted,
	}
	if err := f.db.Create(&o).Error; err != nil {
		t.Fatal(err)
	}
	return o
}

func TestReviewOnlyCompletedOrdersOnce(t *testing.T) {
	f := newFixture(t)
	svc := NewReviewService(repository.NewReviewRepository(f.db), repository.NewOrderRepository(f.db))

	pending := entity.Order{
		Ref: "pending-1", CustomerID: f.customer.ID, RestaurantID: f.restaurant.ID,
		TotalPrice: dec("10.00"), Status: entity.StatusReceived,
	}
	if err := f.db.Create(&pending).Error; err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(f.customer.ID, &ReviewIn{OrderID: pending.ID, Rating: 5}); err == nil {
		t.Error("an order still in flight must not be reviewable")
	}

	done := f.completedOrder(t)
	rev, err := svc.Create(f.customer.ID, &ReviewIn{OrderID: done.ID, Rating: 4, Comment: "good"})
	if err != nil {
		t.Fatalf("create review: %v", err)
	}
	if rev.RestaurantID != f.restaurant.ID {
		t.Errorf("restaurant = %d, want %d", rev.RestaurantID, f.restaurant.ID)
	}

	if _, err := svc.Create(f.customer.ID, &ReviewIn{OrderID: done.ID, Rating: 1}); err == nil {
		t.Error("a second review for the same order must be rejected")
	}
}

func TestReviewRequiresOrderOwnership(t *testing.T) {
	f := newFixture(t)
	svc := NewReviewService(repository.NewReviewRepository(f.db), repository.NewOrderRepository(f.db))

	done := f.completedOrder(t)
	if _, err := svc.Create(f.owner.ID, &ReviewIn{OrderID: done.ID, Rating: 5}); err == nil {
		t.Error("reviewing someone else's order must fail")
	}
}
