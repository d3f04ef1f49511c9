package routes

import (
	"quickbite-api/handlers"
	"quickbite-api/middleware"
	"quickbite-api/models"

	"github.com/gin-gonic/gin"
)

// Handlers bundles everything SetupRoutes wires onto the engine.
type Handlers struct {
	Auth        *middleware.Auth
	AuthHandler *handlers.AuthHandler
	Orders      *handlers.OrderHandler
	Restaurants *handlers.RestaurantHandler
	Products    *handlers.ProductHandler
}

func SetupRoutes(r *gin.Engine, h *Handlers) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", h.AuthHandler.Register)
		public.POST("/auth/login", h.AuthHandler.Login)

		// Restaurants & products (no auth needed)
		public.GET("/restaurants", h.Restaurants.List)
		public.GET("/restaurants/:id", h.Restaurants.Get)
		public.GET("/products", h.Products.List)

		// Order catalog & queries
		public.GET("/order-statuses", h.Orders.ListStatuses)
		public.GET("/orders", h.Orders.List)
		public.GET("/orders/:id", h.Orders.Get)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(h.Auth.Required())
	{
		auth.GET("/profile", h.AuthHandler.GetProfile)

		auth.POST("/orders", h.Orders.Create)
		auth.POST("/orders/:id/status", h.Orders.UpdateStatus)

		owner := middleware.RoleRequired(models.RoleRestaurant, models.RoleAdmin)
		auth.POST("/restaurants", owner, h.Restaurants.Create)
		auth.PUT("/restaurants/:id", owner, h.Restaurants.Update)
		auth.DELETE("/restaurants/:id", owner, h.Restaurants.Delete)

		auth.GET("/admin/orders", middleware.RoleRequired(models.RoleAdmin), h.Orders.ListAll)
	}
}
