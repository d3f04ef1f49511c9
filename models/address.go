package models

type Address struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	StreetAddress string `json:"street_address" gorm:"not null"`
	City          string `json:"city" gorm:"not null"`
	PostalCode    string `json:"postal_code" gorm:"not null"`
}

// Customer places orders. Immutable from the order core's perspective.
type Customer struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	UserID    uint    `json:"user_id"`
	User      User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Name      string  `json:"name" gorm:"not null"`
	AddressID uint    `json:"address_id" gorm:"not null"`
	Address   Address `json:"address,omitempty" gorm:"foreignKey:AddressID"`
}

// Courier delivers orders. Assignment is optional on an order.
type Courier struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	UserID    uint    `json:"user_id"`
	User      User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Name      string  `json:"name" gorm:"not null"`
	AddressID uint    `json:"address_id"`
	Address   Address `json:"address,omitempty" gorm:"foreignKey:AddressID"`
}
