package services

import (
	"strings"

	"github.com/gustavogalazzo/YummyGo/entity"
	"github.com/gustavogalazzo/YummyGo/repository"
)

type AddressService struct {
	Repo *repository.AddressRepository
}

func NewAddressService(repo *repository.AddressRepository) *AddressService {
	return &AddressService{Repo: repo}
}

type AddressIn struct {
	Street     string `json:"street" binding:"required"`
	Number     string `json:"number" binding:"required"`
	Complement string `json:"complement"`
	District   string `json:"district" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required,len=2"`
	ZipCode    string `json:"zipCode" binding:"required"`
}

func (s *AddressService) Create(userID uint, in *AddressIn) (*entity.Address, error) {
	a := &entity.Address{
		Street:     in.Street,
		Number:     in.Number,
		Complement: in.Complement,
		District:   in.District,
		City:       in.City,
		State:      strings.ToUpper(in.State),
		ZipCode:    in.ZipCode,
		UserID:     userID,
	}
	if err := s.Repo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AddressService) List(userID uint) ([]entity.Address, error) {
	return s.Repo.ListForUser(userID)
}

// Delete refuses to touch an address owned by someone else.
func (s *AddressService) Delete(userID, addressID uint) error {
	a, err := s.Repo.FindByID(addressID)
	if err != nil {
		return err
	}
	if a.UserID != userID {
		return ErrForbidden
	}
	return s.Repo.Delete(addressID)
}
