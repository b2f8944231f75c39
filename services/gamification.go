package services

import (
	"github.com/gustavogalazzo/YummyGo/entity"
	"github.com/gustavogalazzo/YummyGo/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Tier thresholds over accumulated points.
const (
	silverThreshold = 2000
	goldThreshold   = 5000
)

var pointsPerUnit = decimal.NewFromInt(10)

// Gamification awards loyalty points on confirmed payment. Not separately
// idempotent: it must run inside the confirmation transaction, after the
// guarded status update has won.
type Gamification struct {
	UserRepo *repository.UserRepository
}

func NewGamification(users *repository.UserRepository) *Gamification {
	return &Gamification{UserRepo: users}
}

// PointsFor is floor(total * 10).
func PointsFor(total decimal.Decimal) int {
	return int(total.Mul(pointsPerUnit).IntPart())
}

// TierFor derives the tier from a points balance.
func TierFor(points int) entity.Tier {
	switch {
	case points >= goldThreshold:
		return entity.TierGold
	case points >= silverThreshold:
		return entity.TierSilver
	default:
		return entity.TierBronze
	}
}

// Award credits the order's points to the customer and recomputes the tier,
// within the caller's transaction. Returns the points awarded.
func (g *Gamification) Award(tx *gorm.DB, order *entity.Order) (int, error) {
	var u entity.User
	if err := tx.First(&u, order.CustomerID).Error; err != nil {
		return 0, err
	}

	earned := PointsFor(order.TotalPrice)
	newTier := TierFor(u.Points + earned)

	if err := g.UserRepo.AddPoints(tx, u.ID, earned, newTier); err != nil {
		return 0, err
	}
	return earned, nil
}
