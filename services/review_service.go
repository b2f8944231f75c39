package services

import (
	"errors"

	"github.com/gustavogalazzo/YummyGo/entity"
	"github.com/gustavogalazzo/YummyGo/repository"
)

type ReviewService struct {
	Repo      *repository.ReviewRepository
	OrderRepo *repository.OrderRepository
}

func NewReviewService(repo *repository.ReviewRepository, orders *repository.OrderRepository) *ReviewService {
	return &ReviewService{Repo: repo, OrderRepo: orders}
}

type ReviewIn struct {
	OrderID   uint   `json:"orderId" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
	Complaint bool   `json:"complaint"`
}

// Create lets a customer review their own completed order, once.
func (s *ReviewService) Create(userID uint, in *ReviewIn) (*entity.Review, error) {
	o, err := s.OrderRepo.GetOrderForUser(userID, in.OrderID)
	if err != nil {
		return nil, err
	}
	if o.Status != entity.StatusCompleted {
		return nil, errors.New("only completed orders can be reviewed")
	}
	exists, err := s.Repo.ExistsForOrder(o.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.New("order already reviewed")
	}

	rev := &entity.Review{
		Rating:       in.Rating,
		Comment:      in.Comment,
		Complaint:    in.Complaint,
		OrderID:      o.ID,
		RestaurantID: o.RestaurantID,
		CustomerID:   userID,
	}
	if err := s.Repo.Create(rev); err != nil {
		return nil, err
	}
	return rev, nil
}

func (s *ReviewService) ListForRestaurant(restID uint, limit int) ([]entity.Review, error) {
	return s.Repo.ListForRestaurant(restID, limit)
}
