package main

import (
	"log"
	"net/http"

	"quickbite-api/config"
	"quickbite-api/handlers"
	"quickbite-api/middleware"
	"quickbite-api/repository"
	"quickbite-api/routes"
	"quickbite-api/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := config.OpenDB(cfg.DBSource)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Repositories
	users := repository.NewUserRepository(db)
	addresses := repository.NewAddressRepository(db)
	customers := repository.NewCustomerRepository(db)
	couriers := repository.NewCourierRepository(db)
	restaurants := repository.NewRestaurantRepository(db)
	products := repository.NewProductRepository(db)
	orders := repository.NewOrderRepository(db)
	statuses := repository.NewStatusRepository(db)

	// Services
	addressService := services.NewAddressService(addresses)
	orderService := services.NewOrderService(db, orders, statuses, customers, restaurants, products)
	restaurantService := services.NewRestaurantService(db, restaurants, users, orders, products, addressService)
	productService := services.NewProductService(products)

	auth := middleware.NewAuth(cfg.JWTSecret, cfg.JWTTTL)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()
	r.Use(middleware.RequestID())

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "QuickBite Food Delivery API",
			"version": "1.0.0",
		})
	})

	routes.SetupRoutes(r, &routes.Handlers{
		Auth:        auth,
		AuthHandler: handlers.NewAuthHandler(users, customers, couriers, addressService, auth),
		Orders:      handlers.NewOrderHandler(orderService),
		Restaurants: handlers.NewRestaurantHandler(restaurantService),
		Products:    handlers.NewProductHandler(productService),
	})

	log.Printf("🚀 Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
