package handlers

import (
	"net/http"

	"quickbite-api/middleware"
	"quickbite-api/models"
	"quickbite-api/repository"
	"quickbite-api/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	Users     *repository.UserRepository
	Customers *repository.CustomerRepository
	Couriers  *repository.CourierRepository
	Addresses *services.AddressService
	Auth      *middleware.Auth
}

func NewAuthHandler(
	users *repository.UserRepository,
	customers *repository.CustomerRepository,
	couriers *repository.CourierRepository,
	addresses *services.AddressService,
	auth *middleware.Auth,
) *AuthHandler {
	return &AuthHandler{
		Users:     users,
		Customers: customers,
		Couriers:  couriers,
		Addresses: addresses,
		Auth:      auth,
	}
}

type RegisterRequest struct {
	Name     string             `json:"name" binding:"required"`
	Email    string             `json:"email" binding:"required,email"`
	Password string             `json:"password" binding:"required,min=6"`
	Role     models.UserRole    `json:"role" binding:"required"`
	Phone    string             `json:"phone"`
	Address  services.AddressIn `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new user account. Customer and courier registrations
// also get their domain profile so they can place or deliver orders.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	validRoles := map[models.UserRole]bool{
		models.RoleCustomer:   true,
		models.RoleRestaurant: true,
		models.RoleCourier:    true,
		models.RoleAdmin:      true,
	}
	if !validRoles[req.Role] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be: customer, restaurant, courier, or admin"})
		return
	}

	if _, err := h.Users.FindByEmail(req.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		Phone:        req.Phone,
	}
	if err := h.Users.Create(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	if req.Role == models.RoleCustomer || req.Role == models.RoleCourier {
		address, err := h.Addresses.ResolveOrCreate(req.Address)
		if err != nil {
			writeError(c, err)
			return
		}
		switch req.Role {
		case models.RoleCustomer:
			err = h.Customers.Create(&models.Customer{UserID: user.ID, Name: user.Name, AddressID: address.ID})
		case models.RoleCourier:
			err = h.Couriers.Create(&models.Courier{UserID: user.ID, Name: user.Name, AddressID: address.ID})
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create profile"})
			return
		}
	}

	token, err := h.Auth.GenerateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// Login authenticates a user and returns a JWT
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Users.FindByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := h.Auth.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// GetProfile returns the authenticated user's profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	user, err := h.Users.FindByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
