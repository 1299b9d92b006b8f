package ports

import (
	"context"
	"errors"
	"restaurant-finder-service/internal/domain"
)

// ErrNotFound is returned by repositories when a lookup key has no match.
var ErrNotFound = errors.New("not found")

// Port: a boundary for retrieving Restaurant entities from a data source.
type RestaurantRepository interface {
	// Retrieve every restaurant in the directory.
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	// Retrieve one restaurant by id, or ErrNotFound.
	GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error)
}
