package handlers

import (
	"net/http"
	"strconv"

	"quickbite-api/services"

	"github.com/gin-gonic/gin"
)

type RestaurantHandler struct {
	Service *services.RestaurantService
}

func NewRestaurantHandler(service *services.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{Service: service}
}

// List returns restaurants filtered by rating and/or price range
func (h *RestaurantHandler) List(c *gin.Context) {
	rating, err := optionalIntQuery(c, "rating")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing parameters"})
		return
	}
	priceRange, err := optionalIntQuery(c, "price_range")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing parameters"})
		return
	}

	restaurants, err := h.Service.ListByRatingAndPriceRange(rating, priceRange)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// Get returns a single restaurant with its rounded-up average rating
func (h *RestaurantHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing parameters"})
		return
	}

	restaurant, err := h.Service.GetWithRating(uint(id))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// Create registers a new restaurant for an existing user
func (h *RestaurantHandler) Create(c *gin.Context) {
	var in services.CreateRestaurantIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing parameters", "details": err.Error()})
		return
	}

	restaurant, err := h.Service.Create(in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Success", "data": restaurant})
}

// Update changes name, price range and phone of a restaurant
func (h *RestaurantHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing parameters"})
		return
	}

	var in services.CreateRestaurantIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing parameters", "details": err.Error()})
		return
	}

	restaurant, err := h.Service.Update(uint(id), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Success", "data": restaurant})
}

// Delete removes a restaurant and all of its orders, lines and products
func (h *RestaurantHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing parameters"})
		return
	}

	restaurant, err := h.Service.Delete(uint(id))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Success", "data": restaurant})
}

// optionalIntQuery parses an optional integer query parameter; absence is
// not an error.
func optionalIntQuery(c *gin.Context, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
