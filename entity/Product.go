package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Available   bool            `gorm:"default:true" json:"available"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`

	// Redundant with Category.RestaurantID, but makes "all products of a
	// restaurant" queries direct.
	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	OrderLines []OrderLine `json:"-"`
}
