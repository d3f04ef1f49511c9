package services

import (
	"errors"

	"quickbite-api/apperr"
	"quickbite-api/models"
	"quickbite-api/repository"

	"gorm.io/gorm"
)

type RestaurantOut struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	PriceRange int    `json:"price_range"`
	Rating     int    `json:"rating"`
}

type CreateRestaurantIn struct {
	UserID     uint      `json:"user_id" binding:"required"`
	Name       string    `json:"name" binding:"required"`
	PriceRange int       `json:"price_range" binding:"required"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	Address    AddressIn `json:"address"`
}

type RestaurantDetailOut struct {
	ID         uint       `json:"id"`
	UserID     uint       `json:"user_id"`
	Name       string     `json:"name"`
	PriceRange int        `json:"price_range"`
	Phone      string     `json:"phone"`
	Email      string     `json:"email"`
	Address    AddressOut `json:"address"`
}

type RestaurantService struct {
	DB        *gorm.DB
	Repo      *repository.RestaurantRepository
	Users     *repository.UserRepository
	Orders    *repository.OrderRepository
	Products  *repository.ProductRepository
	Addresses *AddressService
}

func NewRestaurantService(
	db *gorm.DB,
	repo *repository.RestaurantRepository,
	users *repository.UserRepository,
	orders *repository.OrderRepository,
	products *repository.ProductRepository,
	addresses *AddressService,
) *RestaurantService {
	return &RestaurantService{
		DB:        db,
		Repo:      repo,
		Users:     users,
		Orders:    orders,
		Products:  products,
		Addresses: addresses,
	}
}

// ListByRatingAndPriceRange filters on the rounded-up average rating and the
// exact price range, both optional. An empty list is a valid result here,
// unlike the order listing.
func (s *RestaurantService) ListByRatingAndPriceRange(rating, priceRange *int) ([]RestaurantOut, error) {
	rows, err := s.Repo.FindAllWithRating(priceRange)
	if err != nil {
		return nil, apperr.Internal("failed to load restaurants", err)
	}

	out := make([]RestaurantOut, 0, len(rows))
	for _, row := range rows {
		rounded := RoundUpAverage(row.RatingSum, row.OrderCount)
		if rating != nil && rounded != *rating {
			continue
		}
		out = append(out, RestaurantOut{
			ID:         row.ID,
			Name:       row.Name,
			PriceRange: row.PriceRange,
			Rating:     rounded,
		})
	}
	return out, nil
}

// GetWithRating returns one restaurant with its current rounded-up rating.
func (s *RestaurantService) GetWithRating(id uint) (*RestaurantOut, error) {
	row, err := s.Repo.FindWithRatingByID(id)
	if err != nil {
		return nil, lookupErrf(err, "restaurant with id %d not found", id)
	}
	return &RestaurantOut{
		ID:         row.ID,
		Name:       row.Name,
		PriceRange: row.PriceRange,
		Rating:     RoundUpAverage(row.RatingSum, row.OrderCount),
	}, nil
}

// Create persists a new restaurant for an existing user, resolving the
// address by id or creating it from the submitted fields.
func (s *RestaurantService) Create(in CreateRestaurantIn) (*RestaurantDetailOut, error) {
	if in.PriceRange < 1 || in.PriceRange > 3 {
		return nil, apperr.BadRequest("invalid or missing parameters")
	}

	if _, err := s.Users.FindByID(in.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.BadRequest("invalid or missing parameters")
		}
		return nil, apperr.Internal("database error", err)
	}

	address, err := s.Addresses.ResolveOrCreate(in.Address)
	if err != nil {
		return nil, err
	}

	rest := models.Restaurant{
		UserID:     in.UserID,
		AddressID:  address.ID,
		Name:       in.Name,
		PriceRange: in.PriceRange,
		Phone:      in.Phone,
		Email:      in.Email,
	}
	if err := s.Repo.Create(&rest); err != nil {
		return nil, apperr.Internal("failed to create restaurant", err)
	}

	saved, err := s.Repo.FindByID(rest.ID)
	if err != nil {
		return nil, apperr.Internal("failed to load created restaurant", err)
	}
	out := toRestaurantDetailOut(saved)
	return &out, nil
}

// Update changes name, price range and phone of an existing restaurant.
func (s *RestaurantService) Update(id uint, in CreateRestaurantIn) (*RestaurantDetailOut, error) {
	if in.PriceRange < 1 || in.PriceRange > 3 {
		return nil, apperr.BadRequest("invalid price range")
	}

	rest, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, lookupErrf(err, "restaurant with id %d not found", id)
	}

	rest.Name = in.Name
	rest.PriceRange = in.PriceRange
	rest.Phone = in.Phone
	if err := s.Repo.Update(rest); err != nil {
		return nil, apperr.Internal("failed to update restaurant", err)
	}

	updated, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("failed to load updated restaurant", err)
	}
	out := toRestaurantDetailOut(updated)
	return &out, nil
}

// Delete removes a restaurant and everything hanging off it as an explicit
// multi-step deletion in one transaction, ordered lines, orders, products,
// restaurant. No declarative cascade is involved.
func (s *RestaurantService) Delete(id uint) (*RestaurantOut, error) {
	row, err := s.Repo.FindWithRatingByID(id)
	if err != nil {
		return nil, lookupErrf(err, "restaurant with id %d not found", id)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Orders.DeleteByRestaurantID(tx, id); err != nil {
			return err
		}
		if err := s.Products.DeleteByRestaurantID(tx, id); err != nil {
			return err
		}
		return s.Repo.Delete(tx, id)
	})
	if err != nil {
		return nil, apperr.Internal("failed to delete restaurant", err)
	}

	return &RestaurantOut{
		ID:         row.ID,
		Name:       row.Name,
		PriceRange: row.PriceRange,
		Rating:     RoundUpAverage(row.RatingSum, row.OrderCount),
	}, nil
}

func toRestaurantDetailOut(r *models.Restaurant) RestaurantDetailOut {
	return RestaurantDetailOut{
		ID:         r.ID,
		UserID:     r.UserID,
		Name:       r.Name,
		PriceRange: r.PriceRange,
		Phone:      r.Phone,
		Email:      r.Email,
		Address:    toAddressOut(r.Address),
	}
}
