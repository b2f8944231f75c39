package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderLine struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"`

	Quantity int `json:"quantity"`

	// Price of the product at the moment of purchase. Catalog price changes
	// after checkout never touch this.
	UnitPriceAtPurchase decimal.Decimal `gorm:"type:decimal(10,2)" json:"unitPriceAtPurchase"`
}
