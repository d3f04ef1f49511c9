package handlers

import (
	"net/http"
	"strconv"

	"quickbite-api/services"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	Service *services.ProductService
}

func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{Service: service}
}

// List returns the products of one restaurant (?restaurant=4)
func (h *ProductHandler) List(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.DefaultQuery("restaurant", "0"))
	if err != nil || restaurantID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing parameters"})
		return
	}

	products, err := h.Service.ListByRestaurant(uint(restaurantID))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}
