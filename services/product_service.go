package services

import (
	"quickbite-api/apperr"
	"quickbite-api/repository"
)

type ProductOut struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Cost         int    `json:"cost"`
	Description  string `json:"description"`
	RestaurantID uint   `json:"restaurant_id"`
}

type ProductService struct {
	Repo *repository.ProductRepository
}

func NewProductService(repo *repository.ProductRepository) *ProductService {
	return &ProductService{Repo: repo}
}

// ListByRestaurant returns a restaurant's products. An empty menu is
// reported as not found, same as the order listing.
func (s *ProductService) ListByRestaurant(restaurantID uint) ([]ProductOut, error) {
	products, err := s.Repo.FindByRestaurantID(restaurantID)
	if err != nil {
		return nil, apperr.Internal("failed to load products", err)
	}
	if len(products) == 0 {
		return nil, apperr.NotFoundf("products for restaurant %d not found", restaurantID)
	}

	out := make([]ProductOut, 0, len(products))
	for _, p := range products {
		out = append(out, ProductOut{
			ID:           p.ID,
			Name:         p.Name,
			Cost:         p.Cost,
			Description:  p.Description,
			RestaurantID: p.RestaurantID,
		})
	}
	return out, nil
}
