package repository

import (
	"quickbite-api/models"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) FindByID(id uint) (*models.Restaurant, error) {
	var rest models.Restaurant
	if err := r.DB.Preload("Address").First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Create(rest *models.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) Update(rest *models.Restaurant) error {
	return r.DB.Model(rest).Updates(map[string]any{
		"name":        rest.Name,
		"price_range": rest.PriceRange,
		"phone":       rest.Phone,
	}).Error
}

func (r *RestaurantRepository) Delete(tx *gorm.DB, id uint) error {
	return tx.Delete(&models.Restaurant{}, id).Error
}

// RatingRow carries the aggregates needed to compute a restaurant's
// rounded-up average rating. Summing and counting happen in SQL; the rounding
// rule lives in one place in the service layer.
type RatingRow struct {
	ID         uint
	Name       string
	PriceRange int
	RatingSum  int64
	OrderCount int64
}

const ratingSelect = "restaurants.id, restaurants.name, restaurants.price_range, " +
	"COALESCE(SUM(orders.restaurant_rating), 0) AS rating_sum, COUNT(orders.id) AS order_count"

// FindWithRatingByID returns one restaurant with its rating aggregates, or
// gorm.ErrRecordNotFound.
func (r *RestaurantRepository) FindWithRatingByID(id uint) (*RatingRow, error) {
	var row RatingRow
	err := r.DB.Model(&models.Restaurant{}).
		Select(ratingSelect).
		Joins("LEFT JOIN orders ON orders.restaurant_id = restaurants.id").
		Where("restaurants.id = ?", id).
		Group("restaurants.id").
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// FindAllWithRating returns rating aggregates for every restaurant,
// optionally filtered on exact price range. Rating filtering is done by the
// caller after rounding.
func (r *RestaurantRepository) FindAllWithRating(priceRange *int) ([]RatingRow, error) {
	q := r.DB.Model(&models.Restaurant{}).
		Select(ratingSelect).
		Joins("LEFT JOIN orders ON orders.restaurant_id = restaurants.id").
		Group("restaurants.id").
		Order("restaurants.id")
	if priceRange != nil {
		q = q.Where("restaurants.price_range = ?", *priceRange)
	}

	var rows []RatingRow
	err := q.Scan(&rows).Error
	return rows, err
}
