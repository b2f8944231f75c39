package services

import (
	"errors"

	"github.com/gustavogalazzo/YummyGo/entity"
	"github.com/gustavogalazzo/YummyGo/repository"

	"github.com/shopspring/decimal"
)

// CatalogService is the owner-side menu management. Every mutation checks
// that the target belongs to the caller's restaurant.
type CatalogService struct {
	Repo     *repository.ProductRepository
	RestRepo *repository.RestaurantRepository
}

func NewCatalogService(repo *repository.ProductRepository, restRepo *repository.RestaurantRepository) *CatalogService {
	return &CatalogService{Repo: repo, RestRepo: restRepo}
}

func (s *CatalogService) restaurantOf(ownerID uint) (*entity.Restaurant, error) {
	return s.RestRepo.FindByOwner(ownerID)
}

// ----- Categories -----

func (s *CatalogService) CreateCategory(ownerID uint, name string) (*entity.Category, error) {
	rest, err := s.restaurantOf(ownerID)
	if err != nil {
		return nil, err
	}
	c := &entity.Category{Name: name, RestaurantID: rest.ID}
	if err := s.Repo.CreateCategory(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CatalogService) DeleteCategory(ownerID, categoryID uint) error {
	rest, err := s.restaurantOf(ownerID)
	if err != nil {
		return err
	}
	c, err := s.Repo.FindCategory(categoryID)
	if err != nil {
		return err
	}
	if c.RestaurantID != rest.ID {
		return ErrForbidden
	}
	return s.Repo.DeleteCategory(categoryID)
}

// ----- Products -----

type ProductIn struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Available   *bool           `json:"available"`
	CategoryID  uint            `json:"categoryId" binding:"required"`
}

func (s *CatalogService) CreateProduct(ownerID uint, in *ProductIn) (*entity.Product, error) {
	rest, err := s.restaurantOf(ownerID)
	if err != nil {
		return nil, err
	}
	cat, err := s.Repo.FindCategory(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat.RestaurantID != rest.ID {
		return nil, ErrForbidden
	}
	if !in.Price.IsPositive() {
		return nil, errors.New("price must be positive")
	}

	p := &entity.Product{
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Available:    in.Available == nil || *in.Available,
		CategoryID:   cat.ID,
		RestaurantID: rest.ID,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *CatalogService) UpdateProduct(ownerID, productID uint, in *ProductIn) (*entity.Product, error) {
	rest, err := s.restaurantOf(ownerID)
	if err != nil {
		return nil, err
	}
	p, err := s.Repo.FindByID(productID)
	if err != nil {
		return nil, err
	}
	if p.RestaurantID != rest.ID {
		return nil, ErrForbidden
	}
	if !in.Price.IsPositive() {
		return nil, errors.New("price must be positive")
	}

	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	if in.Available != nil {
		p.Available = *in.Available
	}
	if in.CategoryID != 0 && in.CategoryID != p.CategoryID {
		cat, err := s.Repo.FindCategory(in.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat.RestaurantID != rest.ID {
			return nil, ErrForbidden
		}
		p.CategoryID = cat.ID
	}
	if err := s.Repo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *CatalogService) DeleteProduct(ownerID, productID uint) error {
	rest, err := s.restaurantOf(ownerID)
	if err != nil {
		return err
	}
	p, err := s.Repo.FindByID(productID)
	if err != nil {
		return err
	}
	if p.RestaurantID != rest.ID {
		return ErrForbidden
	}
	return s.Repo.Delete(productID)
}
