package services

import (
	"errors"
	"strings"

	"quickbite-api/apperr"
	"quickbite-api/models"
	"quickbite-api/repository"

	"gorm.io/gorm"
)

// ----- request/response DTOs -----

type OrderLineIn struct {
	ProductID uint `json:"id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderIn struct {
	CustomerID   uint          `json:"customer_id" binding:"required"`
	RestaurantID uint          `json:"restaurant_id" binding:"required"`
	Products     []OrderLineIn `json:"products" binding:"required,min=1,dive"`
}

type OrderLineOut struct {
	ID          uint   `json:"id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitCost    int    `json:"unit_cost"`
	TotalCost   int    `json:"total_cost"`
}

type OrderOut struct {
	ID                uint           `json:"id"`
	CustomerID        uint           `json:"customer_id"`
	CustomerName      string         `json:"customer_name"`
	CustomerAddress   string         `json:"customer_address"`
	RestaurantID      uint           `json:"restaurant_id"`
	RestaurantName    string         `json:"restaurant_name"`
	RestaurantAddress string         `json:"restaurant_address"`
	Status            string         `json:"status"`
	RestaurantRating  int            `json:"restaurant_rating"`
	Products          []OrderLineOut `json:"products"`
	TotalCost         int            `json:"total_cost"`
}

type OrderStatusOut struct {
	Status string `json:"status"`
}

// OrderService owns the order lifecycle: assembly, status transitions and
// the API projection. Collaborators are injected at construction.
type OrderService struct {
	DB          *gorm.DB
	Orders      *repository.OrderRepository
	Statuses    *repository.StatusRepository
	Customers   *repository.CustomerRepository
	Restaurants *repository.RestaurantRepository
	Products    *repository.ProductRepository
}

func NewOrderService(
	db *gorm.DB,
	orders *repository.OrderRepository,
	statuses *repository.StatusRepository,
	customers *repository.CustomerRepository,
	restaurants *repository.RestaurantRepository,
	products *repository.ProductRepository,
) *OrderService {
	return &OrderService{
		DB:          db,
		Orders:      orders,
		Statuses:    statuses,
		Customers:   customers,
		Restaurants: restaurants,
		Products:    products,
	}
}

// Create assembles and persists a new order. Referenced entities must all
// exist; line unit costs are frozen from the product's current cost and the
// restaurant's rating is snapshotted onto the order. The order and its lines
// are written in one transaction, so no partial order can survive a failure.
func (s *OrderService) Create(in CreateOrderIn) (*OrderOut, error) {
	if len(in.Products) == 0 {
		return nil, apperr.BadRequest("invalid or missing parameters")
	}

	customer, err := s.Customers.FindByID(in.CustomerID)
	if err != nil {
		return nil, lookupErr(err, "customer not found")
	}

	restaurant, err := s.Restaurants.FindByID(in.RestaurantID)
	if err != nil {
		return nil, lookupErr(err, "restaurant not found")
	}

	// Missing "in progress" means the catalog was never seeded.
	status, err := s.Statuses.FindByName(models.StatusInProgress)
	if err != nil {
		return nil, lookupErr(err, "order status not found")
	}

	rating, err := s.restaurantRating(restaurant.ID)
	if err != nil {
		return nil, err
	}

	lines := make([]models.OrderLine, 0, len(in.Products))
	for _, p := range in.Products {
		product, err := s.Products.FindByID(p.ProductID)
		if err != nil {
			return nil, lookupErr(err, "product not found")
		}
		lines = append(lines, models.OrderLine{
			ProductID: product.ID,
			Quantity:  p.Quantity,
			UnitCost:  product.Cost,
		})
	}

	order := models.Order{
		CustomerID:       customer.ID,
		RestaurantID:     restaurant.ID,
		StatusID:         status.ID,
		RestaurantRating: rating,
		Lines:            lines,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Orders.Create(tx, &order)
	})
	if err != nil {
		return nil, apperr.Internal("failed to create order", err)
	}

	saved, err := s.Orders.FindByID(order.ID)
	if err != nil {
		return nil, apperr.Internal("failed to load created order", err)
	}
	out := toOrderOut(saved)
	return &out, nil
}

// ListByActor returns the projections of all orders seen from one side of
// the marketplace. An empty result is reported as not found, matching the
// order API contract (the restaurant listing deliberately differs).
func (s *OrderService) ListByActor(actorType string, actorID int) ([]OrderOut, error) {
	if actorType == "" || actorID <= 0 {
		return nil, apperr.BadRequest("invalid or missing parameters")
	}

	var (
		orders []models.Order
		err    error
	)
	switch strings.ToLower(actorType) {
	case "customer":
		orders, err = s.Orders.FindByCustomerID(uint(actorID))
	case "restaurant":
		orders, err = s.Orders.FindByRestaurantID(uint(actorID))
	case "courier":
		orders, err = s.Orders.FindByCourierID(uint(actorID))
	default:
		return nil, apperr.BadRequest("invalid type parameter")
	}
	if err != nil {
		return nil, apperr.Internal("failed to load orders", err)
	}
	if len(orders) == 0 {
		return nil, apperr.NotFound("no orders found for the given criteria")
	}

	out := make([]OrderOut, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderOut(&orders[i]))
	}
	return out, nil
}

func (s *OrderService) GetByID(orderID uint) (*OrderOut, error) {
	order, err := s.Orders.FindByID(orderID)
	if err != nil {
		return nil, lookupErrf(err, "order with id %d not found", orderID)
	}
	out := toOrderOut(order)
	return &out, nil
}

func (s *OrderService) List() ([]OrderOut, error) {
	orders, err := s.Orders.FindAll()
	if err != nil {
		return nil, apperr.Internal("failed to load orders", err)
	}
	out := make([]OrderOut, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderOut(&orders[i]))
	}
	return out, nil
}

// UpdateStatus applies a named status change to an existing order. Any known
// status may follow any other; there is no transition graph here, callers
// wanting a guarded workflow enforce it above this layer.
func (s *OrderService) UpdateStatus(orderID uint, newStatus string) (*OrderStatusOut, error) {
	newStatus = strings.TrimSpace(newStatus)
	if newStatus == "" {
		return nil, apperr.BadRequest("invalid or missing parameters")
	}

	if _, err := s.Orders.FindByID(orderID); err != nil {
		return nil, lookupErrf(err, "order with id %d not found", orderID)
	}

	status, err := s.Statuses.FindByName(newStatus)
	if err != nil {
		return nil, lookupErrf(err, "order status %q not found", newStatus)
	}

	if err := s.Orders.UpdateStatus(orderID, status.ID); err != nil {
		return nil, apperr.Internal("failed to update order status", err)
	}
	return &OrderStatusOut{Status: status.Name}, nil
}

// ListStatuses exposes the status catalog read-only.
func (s *OrderService) ListStatuses() ([]models.OrderStatus, error) {
	statuses, err := s.Statuses.FindAll()
	if err != nil {
		return nil, apperr.Internal("failed to load order statuses", err)
	}
	return statuses, nil
}

// restaurantRating computes the current rounded-up average rating, 0 when
// the restaurant has no orders yet.
func (s *OrderService) restaurantRating(restaurantID uint) (int, error) {
	row, err := s.Restaurants.FindWithRatingByID(restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, apperr.Internal("failed to load restaurant rating", err)
	}
	return RoundUpAverage(row.RatingSum, row.OrderCount), nil
}

// toOrderOut flattens a fully-preloaded order aggregate into its API shape.
// The total is recomputed from line data every time, never read from a
// stored column.
func toOrderOut(o *models.Order) OrderOut {
	products := make([]OrderLineOut, 0, len(o.Lines))
	for _, l := range o.Lines {
		products = append(products, OrderLineOut{
			ID:          l.ProductID,
			ProductName: l.Product.Name,
			Quantity:    l.Quantity,
			UnitCost:    l.UnitCost,
			TotalCost:   l.TotalCost(),
		})
	}

	return OrderOut{
		ID:                o.ID,
		CustomerID:        o.CustomerID,
		CustomerName:      o.Customer.Name,
		CustomerAddress:   Format(o.Customer.Address),
		RestaurantID:      o.RestaurantID,
		RestaurantName:    o.Restaurant.Name,
		RestaurantAddress: Format(o.Restaurant.Address),
		Status:            o.Status.Name,
		RestaurantRating:  o.RestaurantRating,
		Products:          products,
		TotalCost:         o.TotalCost(),
	}
}

// lookupErr translates a gorm miss into a not-found domain error; anything
// else is an internal failure.
func lookupErr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(msg)
	}
	return apperr.Internal("database error", err)
}

func lookupErrf(err error, format string, args ...any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFoundf(format, args...)
	}
	return apperr.Internal("database error", err)
}
