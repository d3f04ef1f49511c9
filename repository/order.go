package repository

import (
	"quickbite-api/models"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// orderPreloads loads everything the API projection needs in one go.
func orderPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Customer").
		Preload("Customer.Address").
		Preload("Restaurant").
		Preload("Restaurant.Address").
		Preload("Status").
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("order_lines.id") }).
		Preload("Lines.Product")
}

// Create persists the order and its lines through the association, inside the
// given transaction. All lines succeed or none do.
func (r *OrderRepository) Create(tx *gorm.DB, o *models.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) FindByID(id uint) (*models.Order, error) {
	var o models.Order
	if err := orderPreloads(r.DB).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) FindByCustomerID(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := orderPreloads(r.DB).Where("customer_id = ?", customerID).Order("id").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByRestaurantID(restaurantID uint) ([]models.Order, error) {
	var orders []models.Order
	err := orderPreloads(r.DB).Where("restaurant_id = ?", restaurantID).Order("id").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByCourierID(courierID uint) ([]models.Order, error) {
	var orders []models.Order
	err := orderPreloads(r.DB).Where("courier_id = ?", courierID).Order("id").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindAll() ([]models.Order, error) {
	var orders []models.Order
	err := orderPreloads(r.DB).Order("id").Find(&orders).Error
	return orders, err
}

// UpdateStatus swaps the status reference on a single order.
func (r *OrderRepository) UpdateStatus(orderID, statusID uint) error {
	return r.DB.Model(&models.Order{}).Where("id = ?", orderID).
		Update("status_id", statusID).Error
}

// DeleteByRestaurantID removes all orders of a restaurant, lines first, as
// one step of the orchestrated restaurant deletion.
func (r *OrderRepository) DeleteByRestaurantID(tx *gorm.DB, restaurantID uint) error {
	sub := tx.Model(&models.Order{}).Select("id").Where("restaurant_id = ?", restaurantID)
	if err := tx.Where("order_id IN (?)", sub).Delete(&models.OrderLine{}).Error; err != nil {
		return err
	}
	return tx.Where("restaurant_id = ?", restaurantID).Delete(&models.Order{}).Error
}

// --- status catalog ---

type StatusRepository struct {
	DB *gorm.DB
}

func NewStatusRepository(db *gorm.DB) *StatusRepository {
	return &StatusRepository{DB: db}
}

func (r *StatusRepository) FindByName(name string) (*models.OrderStatus, error) {
	var s models.OrderStatus
	if err := r.DB.Where("name = ?", name).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StatusRepository) FindAll() ([]models.OrderStatus, error) {
	var statuses []models.OrderStatus
	err := r.DB.Order("id").Find(&statuses).Error
	return statuses, err
}
