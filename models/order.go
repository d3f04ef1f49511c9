package models

import "time"

// OrderStatus is a catalog row. Statuses are looked up by name; an unknown
// name is an error condition, never silently defaulted.
type OrderStatus struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

// Canonical status names seeded into the catalog.
const (
	StatusInProgress = "in progress"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// Order is the aggregate root: an order and its lines are one unit of
// consistency. RestaurantRating is a snapshot of the restaurant's rounded-up
// average rating at creation time, not live-linked.
type Order struct {
	ID               uint        `json:"id" gorm:"primaryKey"`
	CustomerID       uint        `json:"customer_id" gorm:"not null"`
	Customer         Customer    `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	RestaurantID     uint        `json:"restaurant_id" gorm:"not null"`
	Restaurant       Restaurant  `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	StatusID         uint        `json:"status_id" gorm:"not null"`
	Status           OrderStatus `json:"status,omitempty" gorm:"foreignKey:StatusID"`
	CourierID        *uint       `json:"courier_id"`
	Courier          *Courier    `json:"courier,omitempty" gorm:"foreignKey:CourierID"`
	RestaurantRating int         `json:"restaurant_rating"` // 0..5, frozen at creation
	Lines            []OrderLine `json:"lines,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// OrderLine freezes the product's unit cost at order time so later price
// changes never alter an existing order.
type OrderLine struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   uint    `json:"order_id" gorm:"not null"`
	ProductID uint    `json:"product_id" gorm:"not null"`
	Product   Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	UnitCost  int     `json:"unit_cost" gorm:"not null"`
}

// TotalCost is the line total, always derived.
func (l OrderLine) TotalCost() int {
	return l.Quantity * l.UnitCost
}

// TotalCost sums line totals. Never stored independently.
func (o Order) TotalCost() int {
	total := 0
	for _, l := range o.Lines {
		total += l.TotalCost()
	}
	return total
}
