package repository

import (
	"quickbite-api/models"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) FindByID(id uint) (*models.Product, error) {
	var p models.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) FindByRestaurantID(restaurantID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.DB.Where("restaurant_id = ?", restaurantID).Order("id").Find(&products).Error
	return products, err
}

func (r *ProductRepository) Create(p *models.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) DeleteByRestaurantID(tx *gorm.DB, restaurantID uint) error {
	return tx.Where("restaurant_id = ?", restaurantID).Delete(&models.Product{}).Error
}
