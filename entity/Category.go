package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name string `json:"name"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	// Deleting a category takes its products with it.
	Products []Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"products"`
}
