package services

import (
	"errors"
	"fmt"

	"quickbite-api/apperr"
	"quickbite-api/models"
	"quickbite-api/repository"

	"gorm.io/gorm"
)

type AddressIn struct {
	ID            uint   `json:"id"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
}

type AddressOut struct {
	ID            uint   `json:"id"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
}

type AddressService struct {
	Repo *repository.AddressRepository
}

func NewAddressService(repo *repository.AddressRepository) *AddressService {
	return &AddressService{Repo: repo}
}

func (s *AddressService) FindByID(id uint) (*models.Address, error) {
	a, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("address with id %d not found", id)
		}
		return nil, apperr.Internal("failed to load address", err)
	}
	return a, nil
}

// ResolveOrCreate looks the address up by id and falls back to creating a
// new record from the remaining fields.
func (s *AddressService) ResolveOrCreate(in AddressIn) (*models.Address, error) {
	if in.ID != 0 {
		a, err := s.FindByID(in.ID)
		if err == nil {
			return a, nil
		}
		if apperr.KindOf(err) != apperr.KindNotFound {
			return nil, err
		}
	}

	a := &models.Address{
		StreetAddress: in.StreetAddress,
		City:          in.City,
		PostalCode:    in.PostalCode,
	}
	if err := s.Repo.Save(a); err != nil {
		return nil, apperr.Internal("failed to save address", err)
	}
	return a, nil
}

// Format renders the single-line projection used by the order API.
func Format(a models.Address) string {
	return fmt.Sprintf("%s, %s, %s", a.StreetAddress, a.City, a.PostalCode)
}

func toAddressOut(a models.Address) AddressOut {
	return AddressOut{
		ID:            a.ID,
		StreetAddress: a.StreetAddress,
		City:          a.City,
		PostalCode:    a.PostalCode,
	}
}
