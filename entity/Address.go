package entity

import (
	"fmt"

	"gorm.io/gorm"
)

type Address struct {
	gorm.Model
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zipCode"`

	UserID uint `json:"userId"`
	User   User `json:"-"`
}

// Snapshot renders the address as the denormalized string frozen onto an
// order at checkout time.
func (a Address) Snapshot() string {
	return fmt.Sprintf("%s, %s - %s", a.Street, a.Number, a.ZipCode)
}
