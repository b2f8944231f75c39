package repository

import (
	"github.com/gustavogalazzo/YummyGo/entity"

	"gorm.io/gorm"
)

type ProductRepository struct{ DB *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) FindByID(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByIDs returns whatever subset still exists; callers that resolve cart
// lines skip the missing ones.
func (r *ProductRepository) FindByIDs(ids []uint) ([]entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []entity.Product
	err := r.DB.Where("id IN ?", ids).Find(&out).Error
	return out, err
}

func (r *ProductRepository) ListByRestaurant(restID uint) ([]entity.Product, error) {
	var out []entity.Product
	err := r.DB.Where("restaurant_id = ?", restID).Order("name").Find(&out).Error
	return out, err
}

func (r *ProductRepository) Update(p *entity.Product) error {
	return r.DB.Save(p).Error
}

func (r *ProductRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Product{}, id).Error
}

// ---------------- Categories ----------------

func (r *ProductRepository) CreateCategory(c *entity.Category) error {
	return r.DB.Create(c).Error
}

func (r *ProductRepository) FindCategory(id uint) (*entity.Category, error) {
	var c entity.Category
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ProductRepository) ListCategories(restID uint) ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Where("restaurant_id = ?", restID).
		Preload("Products").
		Order("name").Find(&out).Error
	return out, err
}

// DeleteCategory removes the category and its products.
func (r *ProductRepository) DeleteCategory(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&entity.Product{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Category{}, id).Error
	})
}
