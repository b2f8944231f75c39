package entity

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	Rating    int    `json:"rating"` // 1..5
	Comment   string `json:"comment"`
	Complaint bool   `gorm:"default:false" json:"complaint"`

	OrderID uint  `gorm:"uniqueIndex" json:"orderId"` // one review per order
	Order   Order `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	CustomerID uint `json:"customerId"`
	Customer   User `gorm:"foreignKey:CustomerID" json:"-"`
}
