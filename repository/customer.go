package repository

import (
	"quickbite-api/models"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	DB *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) FindByID(id uint) (*models.Customer, error) {
	var c models.Customer
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) Create(c *models.Customer) error {
	return r.DB.Create(c).Error
}

type CourierRepository struct {
	DB *gorm.DB
}

func NewCourierRepository(db *gorm.DB) *CourierRepository {
	return &CourierRepository{DB: db}
}

func (r *CourierRepository) FindByID(id uint) (*models.Courier, error) {
	var c models.Courier
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CourierRepository) Create(c *models.Courier) error {
	return r.DB.Create(c).Error
}
