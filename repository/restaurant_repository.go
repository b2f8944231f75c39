package repository

import (
	"github.com/gustavogalazzo/YummyGo/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Create(tx *gorm.DB, rest *entity.Restaurant) error {
	return tx.Create(rest).Error
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindByOwner(userID uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Where("user_id = ?", userID).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) ListActive() ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Where("active = ?", true).Order("name").Find(&out).Error
	return out, err
}

// Search matches restaurant names plus restaurants selling a matching
// available product.
func (r *RestaurantRepository) Search(term string) ([]entity.Restaurant, error) {
	like := "%" + term + "%"
	var out []entity.Restaurant
	err := r.DB.
		Where("active = ?", true).
		Where(
			r.DB.Where("name LIKE ?", like).
				Or("id IN (?)", r.DB.Model(&entity.Product{}).
					Select("restaurant_id").
					Where("available = ? AND (name LIKE ? OR description LIKE ?)", true, like, like)),
		).
		Order("name").Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) IsOwnedBy(restID, userID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Restaurant{}).
		Where("id = ? AND user_id = ?", restID, userID).Count(&cnt).Error
	return cnt > 0, err
}
