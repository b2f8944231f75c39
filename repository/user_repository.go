package repository

import (
	"github.com/gustavogalazzo/YummyGo/entity"

	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&cnt).Error
	return cnt, err
}

func (r *UserRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(updates).Error
}

// AddPoints bumps the accumulator and rewrites the derived tier in one
// UPDATE. Runs inside the caller's transaction.
func (r *UserRepository) AddPoints(tx *gorm.DB, userID uint, points int, tier entity.Tier) error {
	return tx.Model(&entity.User{}).Where("id = ?", userID).
		Updates(map[string]any{
			"points": gorm.Expr("points + ?", points),
			"tier":   tier,
		}).Error
}

func (r *UserRepository) SetRole(tx *gorm.DB, userID uint, role string) error {
	return tx.Model(&entity.User{}).Where("id = ?", userID).Update("role", role).Error
}
