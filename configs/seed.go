package configs

import (
	"log"

	"github.com/gustavogalazzo/YummyGo/entity"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// SeedDemoData inserts a demo owner with a small menu on an empty
// database, so the API is browsable right after the first boot.
func SeedDemoData() error {
	var count int64
	if err := db.Model(&entity.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("owner1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	owner := entity.User{
		Email:    "owner@demo.local",
		Password: string(hashed),
		FullName: "Demo Owner",
		Role:     "owner",
		Tier:     entity.TierBronze,
	}
	if err := db.Create(&owner).Error; err != nil {
		return err
	}

	rest := entity.Restaurant{
		Name:        "Pizzaria do Centro",
		Description: "Wood-fired pizzas",
		DeliveryFee: decimal.NewFromFloat(5.00),
		AvgDelivery: 40,
		UserID:      owner.ID,
	}
	if err := db.Create(&rest).Error; err != nil {
		return err
	}

	cat := entity.Category{Name: "Pizzas", RestaurantID: rest.ID}
	if err := db.Create(&cat).Error; err != nil {
		return err
	}

	products := []entity.Product{
		{Name: "Margherita", Price: decimal.NewFromFloat(20.00), CategoryID: cat.ID, RestaurantID: rest.ID, Available: true},
		{Name: "Calabresa", Price: decimal.NewFromFloat(24.50), CategoryID: cat.ID, RestaurantID: rest.ID, Available: true},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	log.Println("seeded demo restaurant")
	return nil
}
