package services

import (
	"time"

	"github.com/gustavogalazzo/YummyGo/repository"

	"github.com/shopspring/decimal"
)

// ReportService aggregates the owner's sales and quality numbers.
type ReportService struct {
	Orders   *repository.OrderRepository
	Reviews  *repository.ReviewRepository
	RestRepo *repository.RestaurantRepository
}

func NewReportService(orders *repository.OrderRepository, reviews *repository.ReviewRepository, restRepo *repository.RestaurantRepository) *ReportService {
	return &ReportService{Orders: orders, Reviews: reviews, RestRepo: restRepo}
}

type SalesReport struct {
	From        time.Time                `json:"from"`
	To          time.Time                `json:"to"`
	Revenue     decimal.Decimal          `json:"revenue"`
	ByStatus    []repository.StatusCount `json:"byStatus"`
	TopProducts []repository.TopProduct  `json:"topProducts"`
}

func (s *ReportService) Sales(ownerID, restID uint, from, to time.Time) (*SalesReport, error) {
	ok, err := s.RestRepo.IsOwnedBy(restID, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}

	revenue, err := s.Orders.Revenue(restID, from, to)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.Orders.CountByStatus(restID, from, to)
	if err != nil {
		return nil, err
	}
	top, err := s.Orders.TopProducts(restID, from, to, 5)
	if err != nil {
		return nil, err
	}

	return &SalesReport{From: from, To: to, Revenue: revenue, ByStatus: byStatus, TopProducts: top}, nil
}

type QualityReport struct {
	From time.Time                `json:"from"`
	To   time.Time                `json:"to"`
	*repository.QualityStats
}

func (s *ReportService) Quality(ownerID, restID uint, from, to time.Time) (*QualityReport, error) {
	ok, err := s.RestRepo.IsOwnedBy(restID, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}

	stats, err := s.Reviews.Stats(restID, from, to)
	if err != nil {
		return nil, err
	}
	return &QualityReport{From: from, To: to, QualityStats: stats}, nil
}
