package repository

import (
	"quickbite-api/models"

	"gorm.io/gorm"
)

type AddressRepository struct {
	DB *gorm.DB
}

func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{DB: db}
}

func (r *AddressRepository) FindByID(id uint) (*models.Address, error) {
	var a models.Address
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AddressRepository) Save(a *models.Address) error {
	return r.DB.Save(a).Error
}
