package models

import "time"

type Restaurant struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null"`
	User       User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	AddressID  uint      `json:"address_id" gorm:"not null"`
	Address    Address   `json:"address,omitempty" gorm:"foreignKey:AddressID"`
	Name       string    `json:"name" gorm:"not null"`
	PriceRange int       `json:"price_range" gorm:"not null"` // 1..3
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	Products   []Product `json:"products,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Product struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null"`
	Name         string    `json:"name" gorm:"not null"`
	Cost         int       `json:"cost" gorm:"not null"` // smallest currency unit
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
