package ports

import (
	"context"
	"restaurant-finder-service/internal/domain"
)

// Contract for resolving a free-text address into coordinates.
type Geocoder interface {
	// Resolve address to coordinates. A nil result with a nil error means
	// the address could not be resolved.
	Geocode(ctx context.Context, address string) (*domain.Coordinates, error)
}
