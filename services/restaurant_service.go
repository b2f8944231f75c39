package services

import (
	"errors"

	"github.com/gustavogalazzo/YummyGo/entity"
	"github.com/gustavogalazzo/YummyGo/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RestaurantService struct {
	DB       *gorm.DB
	Repo     *repository.RestaurantRepository
	Products *repository.ProductRepository
	Users    *repository.UserRepository
}

func NewRestaurantService(db *gorm.DB, repo *repository.RestaurantRepository, products *repository.ProductRepository, users *repository.UserRepository) *RestaurantService {
	return &RestaurantService{DB: db, Repo: repo, Products: products, Users: users}
}

type RegisterRestaurantIn struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
	AvgDelivery int             `json:"avgDeliveryMinutes"`
}

// Register creates the restaurant and promotes the user to owner, in one
// transaction. One restaurant per user.
func (s *RestaurantService) Register(userID uint, in *RegisterRestaurantIn) (*entity.Restaurant, error) {
	if _, err := s.Repo.FindByOwner(userID); err == nil {
		return nil, errors.New("user already owns a restaurant")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if in.DeliveryFee.IsNegative() {
		return nil, errors.New("delivery fee cannot be negative")
	}

	rest := &entity.Restaurant{
		Name:        in.Name,
		Description: in.Description,
		DeliveryFee: in.DeliveryFee,
		AvgDelivery: in.AvgDelivery,
		UserID:      userID,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, rest); err != nil {
			return err
		}
		return s.Users.SetRole(tx, userID, "owner")
	})
	if err != nil {
		return nil, err
	}
	return rest, nil
}

func (s *RestaurantService) List() ([]entity.Restaurant, error) {
	return s.Repo.ListActive()
}

func (s *RestaurantService) Search(term string) ([]entity.Restaurant, error) {
	return s.Repo.Search(term)
}

type RestaurantDetail struct {
	Restaurant entity.Restaurant `json:"restaurant"`
	Menu       []entity.Category `json:"menu"`
}

func (s *RestaurantService) Detail(restID uint) (*RestaurantDetail, error) {
	rest, err := s.Repo.FindByID(restID)
	if err != nil {
		return nil, err
	}
	menu, err := s.Products.ListCategories(restID)
	if err != nil {
		return nil, err
	}
	return &RestaurantDetail{Restaurant: *rest, Menu: menu}, nil
}

func (s *RestaurantService) ForOwner(userID uint) (*entity.Restaurant, error) {
	return s.Repo.FindByOwner(userID)
}
