package handlers

import (
	"net/http"
	"strconv"

	"quickbite-api/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	Service *services.OrderService
}

func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{Service: service}
}

// Create assembles a new order from the request body
func (h *OrderHandler) Create(c *gin.Context) {
	var in services.CreateOrderIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing parameters", "details": err.Error()})
		return
	}

	order, err := h.Service.Create(in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// List returns orders filtered by actor type and id (?type=customer&id=5)
func (h *OrderHandler) List(c *gin.Context) {
	actorType := c.Query("type")
	actorID, err := strconv.Atoi(c.DefaultQuery("id", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing parameters"})
		return
	}

	orders, err := h.Service.ListByActor(actorType, actorID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Get returns a single order projection
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing parameters"})
		return
	}

	order, err := h.Service.GetByID(uint(id))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus applies a named status change to an order
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing parameters"})
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing parameters", "details": err.Error()})
		return
	}

	status, err := h.Service.UpdateStatus(uint(id), req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// ListAll returns every order in the system, unfiltered
func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.Service.List()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// ListStatuses returns the status catalog
func (h *OrderHandler) ListStatuses(c *gin.Context) {
	statuses, err := h.Service.ListStatuses()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, statuses)
}
