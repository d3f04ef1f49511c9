package services

import (
	"path/filepath"
	"testing"

	"quickbite-api/config"
	"quickbite-api/models"
	"quickbite-api/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires the full service stack against a throwaway database.
type testEnv struct {
	DB          *gorm.DB
	Orders      *OrderService
	Restaurants *RestaurantService
	Products    *ProductService
	Addresses   *AddressService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	users := repository.NewUserRepository(db)
	addresses := repository.NewAddressRepository(db)
	customers := repository.NewCustomerRepository(db)
	restaurants := repository.NewRestaurantRepository(db)
	products := repository.NewProductRepository(db)
	orders := repository.NewOrderRepository(db)
	statuses := repository.NewStatusRepository(db)

	addressService := NewAddressService(addresses)
	return &testEnv{
		DB:          db,
		Orders:      NewOrderService(db, orders, statuses, customers, restaurants, products),
		Restaurants: NewRestaurantService(db, restaurants, users, orders, products, addressService),
		Products:    NewProductService(products),
		Addresses:   addressService,
	}
}

// fixtures is one customer, one restaurant and three 300-cost products.
type fixtures struct {
	Customer   models.Customer
	Restaurant models.Restaurant
	Products   []models.Product
}

func seedFixtures(t *testing.T, db *gorm.DB) fixtures {
	t.Helper()

	owner := models.User{Name: "Pat Owner", Email: "owner@example.com", PasswordHash: "x", Role: models.RoleRestaurant}
	if err := db.Create(&owner).Error; err != nil {
		t.Fatalf("seed owner: %v", err)
	}

	customerAddr := models.Address{StreetAddress: "123 Main St", City: "Montreal", PostalCode: "H1A 1A1"}
	restaurantAddr := models.Address{StreetAddress: "456 Oak Ave", City: "Montreal", PostalCode: "H2B 2B2"}
	if err := db.Create(&customerAddr).Error; err != nil {
		t.Fatalf("seed address: %v", err)
	}
	if err := db.Create(&restaurantAddr).Error; err != nil {
		t.Fatalf("seed address: %v", err)
	}

	customer := models.Customer{Name: "Alice Smith", AddressID: customerAddr.ID}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}

	restaurant := models.Restaurant{
		UserID:     owner.ID,
		AddressID:  restaurantAddr.ID,
		Name:       "Villa Wellington",
		PriceRange: 2,
		Phone:      "514-555-0199",
		Email:      "villa@example.com",
	}
	if err := db.Create(&restaurant).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}

	products := []models.Product{
		{RestaurantID: restaurant.ID, Name: "Pulled pork sandwich", Cost: 300},
		{RestaurantID: restaurant.ID, Name: "Poutine", Cost: 300},
		{RestaurantID: restaurant.ID, Name: "Maple glazed salmon", Cost: 300},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			t.Fatalf("seed product: %v", err)
		}
	}

	customer.Address = customerAddr
	restaurant.Address = restaurantAddr
	return fixtures{Customer: customer, Restaurant: restaurant, Products: products}
}
