package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "Card"
)

type Order struct {
	gorm.Model
	// Ref is the public identifier carried to the payment processor as the
	// correlation token and echoed back by its events.
	Ref string `gorm:"uniqueIndex;not null" json:"ref"`

	CustomerID uint `json:"customerId"`
	Customer   User `gorm:"foreignKey:CustomerID" json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"totalPrice"`
	Status     OrderStatus     `gorm:"not null;default:PendingPayment" json:"status"`

	// Frozen copy of the chosen address at checkout time.
	DeliveryAddress string        `json:"deliveryAddress"`
	PaymentMethod   PaymentMethod `gorm:"default:Card" json:"paymentMethod"`

	// Generated once, on payment confirmation. Shown to the customer and
	// checked in person on handover.
	DeliveryPin *string `json:"deliveryPin,omitempty"`

	Lines   []OrderLine `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Reviews []Review    `json:"-"`
}
