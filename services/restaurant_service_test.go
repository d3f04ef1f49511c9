package services

import (
	"testing"

	"quickbite-api/apperr"
	"quickbite-api/models"
)

// rateOrders creates one order per rating and stamps the rating on it.
func rateOrders(t *testing.T, env *testEnv, fx fixtures, ratings ...int) {
	t.Helper()
	for _, rating := range ratings {
		order, err := env.Orders.Create(CreateOrderIn{
			CustomerID:   fx.Customer.ID,
			RestaurantID: fx.Restaurant.ID,
			Products:     []OrderLineIn{{ProductID: fx.Products[0].ID, Quantity: 1}},
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if err := env.DB.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("restaurant_rating", rating).Error; err != nil {
			t.Fatalf("set rating: %v", err)
		}
	}
}

func TestGetWithRating(t *testing.T) {
	env := newTestEnv(t)
	fx := seedFixtures(t, env.DB)

	got, err := env.Restaurants.GetWithRating(fx.Restaurant.ID)
	if err != nil {
		t.Fatalf("GetWithRating: %v", err)
	}
	if got.Rating != 0 {
		t.Errorf("rating with no orders = %d, want 0", got.Rating)
	}
	if got.Name != "Villa Wellington" || got.PriceRange != 2 {
		t.Errorf("projection = %+v", got)
	}

	rateOrders(t, env, fx, 3, 3, 4)
	got, err = env.Restaurants.GetWithRating(fx.Restaurant.ID)
	if err != nil {
		t.Fatalf("GetWithRating: %v", err)
	}
	if got.Rating != 4 {
		t.Errorf("rating = %d, want 4 (ceiling of 10/3)", got.Rating)
	}

	if _, err := env.Restaurants.GetWithRating(999); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("unknown id: kind = %v, want not found", apperr.KindOf(err))
	}
}

func TestListByRatingAndPriceRange(t *testing.T) {
	env := newTestEnv(t)
	fx := seedFixtures(t, env.DB)
	rateOrders(t, env, fx, 3, 4) // rounds up to 4

	cheapAddr := models.Address{StreetAddress: "1 Cheap St", City: "Montreal", PostalCode: "H4D 4D4"}
	if err := env.DB.Create(&cheapAddr).Error; err != nil {
		t.Fatalf("seed address: %v", err)
	}
	cheap := models.Restaurant{
		UserID: fx.Restaurant.UserID, AddressID: cheapAddr.ID,
		Name: "Chez Budget", PriceRange: 1,
	}
	if err := env.DB.Create(&cheap).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}

	all, err := env.Restaurants.ListByRatingAndPriceRange(nil, nil)
	if err != nil {
		t.Fatalf("ListByRatingAndPriceRange: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("unfiltered: %d restaurants, want 2", len(all))
	}

	rating := 4
	rated, err := env.Restaurants.ListByRatingAndPriceRange(&rating, nil)
	if err != nil {
		t.Fatalf("ListByRatingAndPriceRange: %v", err)
	}
	if len(rated) != 1 || rated[0].ID != fx.Restaurant.ID || rated[0].Rating != 4 {
		t.Errorf("rating filter: %+v, want only %d with rating 4", rated, fx.Restaurant.ID)
	}

	priceRange := 1
	cheapOnly, err := env.Restaurants.ListByRatingAndPriceRange(nil, &priceRange)
	if err != nil {
		t.Fatalf("ListByRatingAndPriceRange: %v", err)
	}
	if len(cheapOnly) != 1 || cheapOnly[0].ID != cheap.ID {
		t.Errorf("price filter: %+v, want only %d", cheapOnly, cheap.ID)
	}

	// No matches is an empty success here, not an error.
	rating = 5
	none, err := env.Restaurants.ListByRatingAndPriceRange(&rating, &priceRange)
	if err != nil {
		t.Fatalf("ListByRatingAndPriceRange: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("got %d restaurants, want empty list", len(none))
	}
}

func TestCreateRestaurant(t *testing.T) {
	env := newTestEnv(t)
	fx := seedFixtures(t, env.DB)

	created, err := env.Restaurants.Create(CreateRestaurantIn{
		UserID:     fx.Restaurant.UserID,
		Name:       "La Belle Assiette",
		PriceRange: 3,
		Phone:      "514-555-0123",
		Email:      "belle@example.com",
		Address:    AddressIn{StreetAddress: "22 Rue Neuve", City: "Montreal", PostalCode: "H5E 5E5"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Name != "La Belle Assiette" || created.Address.City != "Montreal" {
		t.Errorf("created = %+v", created)
	}
	if created.Address.ID == 0 {
		t.Error("address was not persisted")
	}

	// Existing address id is reused, not duplicated.
	reuse, err := env.Restaurants.Create(CreateRestaurantIn{
		UserID:     fx.Restaurant.UserID,
		Name:       "Second Location",
		PriceRange: 1,
		Address:    AddressIn{ID: created.Address.ID},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if reuse.Address.ID != created.Address.ID {
		t.Errorf("address id = %d, want reused %d", reuse.Address.ID, created.Address.ID)
	}

	if _, err := env.Restaurants.Create(CreateRestaurantIn{UserID: 999, Name: "Ghost", PriceRange: 2}); apperr.KindOf(err) != apperr.KindBadRequest {
		t.Errorf("unknown user: kind = %v, want bad request", apperr.KindOf(err))
	}
	if _, err := env.Restaurants.Create(CreateRestaurantIn{UserID: fx.Restaurant.UserID, Name: "Pricey", PriceRange: 7}); apperr.KindOf(err) != apperr.KindBadRequest {
		t.Errorf("invalid price range: kind = %v, want bad request", apperr.KindOf(err))
	}
}

func TestUpdateRestaurant(t *testing.T) {
	env := newTestEnv(t)
	fx := seedFixtures(t, env.DB)

	updated, err := env.Restaurants.Update(fx.Restaurant.ID, CreateRestaurantIn{
		UserID:     fx.Restaurant.UserID,
		Name:       "Villa Wellington 2.0",
		PriceRange: 3,
		Phone:      "514-555-0222",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Villa Wellington 2.0" || updated.PriceRange != 3 || updated.Phone != "514-555-0222" {
		t.Errorf("updated = %+v", updated)
	}

	if _, err := env.Restaurants.Update(fx.Restaurant.ID, CreateRestaurantIn{Name: "X", PriceRange: 0}); apperr.KindOf(err) != apperr.KindBadRequest {
		t.Errorf("invalid price range: kind = %v, want bad request", apperr.KindOf(err))
	}
	if _, err := env.Restaurants.Update(999, CreateRestaurantIn{Name: "X", PriceRange: 2}); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("unknown id: kind = %v, want not found", apperr.KindOf(err))
	}
	// Input validation wins over the existence check, same as Create.
	if _, err := env.Restaurants.Update(999, CreateRestaurantIn{Name: "X", PriceRange: 9}); apperr.KindOf(err) != apperr.KindBadRequest {
		t.Errorf("invalid price range on unknown id: kind = %v, want bad request", apperr.KindOf(err))
	}
}

func TestDeleteRestaurantCascades(t *testing.T) {
	env := newTestEnv(t)
	fx := seedFixtures(t, env.DB)
	rateOrders(t, env, fx, 4, 4)

	deleted, err := env.Restaurants.Delete(fx.Restaurant.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted.ID != fx.Restaurant.ID || deleted.Rating != 4 {
		t.Errorf("deleted = %+v, want id %d rating 4", deleted, fx.Restaurant.ID)
	}

	var orders, lines, products, restaurants int64
	env.DB.Model(&models.Order{}).Where("restaurant_id = ?", fx.Restaurant.ID).Count(&orders)
	env.DB.Model(&models.OrderLine{}).Count(&lines)
	env.DB.Model(&models.Product{}).Where("restaurant_id = ?", fx.Restaurant.ID).Count(&products)
	env.DB.Model(&models.Restaurant{}).Where("id = ?", fx.Restaurant.ID).Count(&restaurants)
	if orders != 0 || lines != 0 || products != 0 || restaurants != 0 {
		t.Errorf("leftovers after delete: %d orders, %d lines, %d products, %d restaurants",
			orders, lines, products, restaurants)
	}

	if _, err := env.Restaurants.Delete(fx.Restaurant.ID); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("second delete: kind = %v, want not found", apperr.KindOf(err))
	}
}

func TestListProductsByRestaurant(t *testing.T) {
	env := newTestEnv(t)
	fx := seedFixtures(t, env.DB)

	products, err := env.Products.ListByRestaurant(fx.Restaurant.ID)
	if err != nil {
		t.Fatalf("ListByRestaurant: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("got %d products, want 3", len(products))
	}
	if products[0].Name != "Pulled pork sandwich" || products[0].Cost != 300 {
		t.Errorf("first product = %+v", products[0])
	}

	if _, err := env.Products.ListByRestaurant(999); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("unknown restaurant: kind = %v, want not found", apperr.KindOf(err))
	}
}
