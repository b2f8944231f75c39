package entity

import (
	"gorm.io/gorm"
)

// Tier is the loyalty level derived from accumulated points.
type Tier string

const (
	TierBronze Tier = "Bronze"
	TierSilver Tier = "Silver"
	TierGold   Tier = "Gold"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `gorm:"not null;default:customer" json:"role"`

	// Loyalty state. Mutated only by the gamification engine, inside the
	// payment-confirmation transaction.
	Points int  `gorm:"not null;default:0" json:"points"`
	Tier   Tier `gorm:"not null;default:Bronze" json:"tier"`

	// Relations, preload only when needed
	Addresses       []Address   `json:"-"`
	Orders          []Order     `gorm:"foreignKey:CustomerID" json:"-"`
	RestaurantOwned *Restaurant `gorm:"foreignKey:UserID" json:"-"`
	Reviews         []Review    `gorm:"foreignKey:CustomerID" json:"-"`
}
