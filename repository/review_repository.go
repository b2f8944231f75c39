package repository

import (
	"time"

	"github.com/gustavogalazzo/YummyGo/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct{ DB *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(rev *entity.Review) error {
	return r.DB.Create(rev).Error
}

func (r *ReviewRepository) ExistsForOrder(orderID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Review{}).Where("order_id = ?", orderID).Count(&cnt).Error
	return cnt > 0, err
}

func (r *ReviewRepository) ListForRestaurant(restID uint, limit int) ([]entity.Review, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []entity.Review
	err := r.DB.Where("restaurant_id = ?", restID).
		Order("id DESC").Limit(limit).Find(&out).Error
	return out, err
}

type QualityStats struct {
	AvgRating   float64 `json:"avgRating"`
	ReviewCount int64   `json:"reviewCount"`
	Complaints  int64   `json:"complaints"`
}

func (r *ReviewRepository) Stats(restID uint, from, to time.Time) (*QualityStats, error) {
	var row QualityStats
	err := r.DB.Model(&entity.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS review_count, COALESCE(SUM(CASE WHEN complaint THEN 1 ELSE 0 END), 0) AS complaints").
		Where("restaurant_id = ? AND created_at BETWEEN ? AND ?", restID, from, to).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
