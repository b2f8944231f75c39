package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`

	DeliveryFee decimal.Decimal `gorm:"type:decimal(10,2)" json:"deliveryFee"`
	AvgDelivery int             `json:"avgDeliveryMinutes"`
	Active      bool            `gorm:"default:true" json:"active"`

	UserID uint `gorm:"uniqueIndex" json:"userId"` // owner
	User   User `json:"-"`

	Categories []Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Products   []Product  `json:"-"`
	Orders     []Order    `json:"-"`
	Reviews    []Review   `json:"-"`
}
