package services

import (
	"log"

	"github.com/gustavogalazzo/YummyGo/entity"
)

// Notifier delivers the order confirmation to the customer. Failures are
// logged and never roll back the order transition.
type Notifier interface {
	SendOrderConfirmation(user *entity.User, order *entity.Order) error
}

// LogNotifier is the default sink until a mail/SMS provider is wired in.
type LogNotifier struct{}

func (LogNotifier) SendOrderConfirmation(user *entity.User, order *entity.Order) error {
	log.Printf("order %s confirmed for %s (pin sent)", order.Ref, user.Email)
	return nil
}
