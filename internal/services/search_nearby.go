package services

import (
	"cmp"
	"context"
	"fmt"
	"restaurant-finder-service/internal/domain"
	"restaurant-finder-service/internal/geo"
	"restaurant-finder-service/internal/platform/obs"
	"restaurant-finder-service/internal/ports"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

// OriginSource records how the search origin was resolved.
type OriginSource string

const (
	OriginCoordinates OriginSource = "coordinates"
	OriginAddress     OriginSource = "address"
	OriginDefault     OriginSource = "default"
)

type SearchResult struct {
	Origin      domain.Coordinates
	Source      OriginSource
	Restaurants []domain.RankedRestaurant
	Message     string
}

// ResolveOrigin picks the search origin: explicit coordinates first, then the
// geocoded address, then domain.DefaultCoordinates. Geocoder failures fall
// back to the default and are logged rather than returned.
func ResolveOrigin(
	ctx context.Context,
	params domain.SearchParams,
	geocoder ports.Geocoder,
) (domain.Coordinates, OriginSource) {
	if params.HasCoordinates() {
		return domain.Coordinates{Latitude: *params.Latitude, Longitude: *params.Longitude}, OriginCoordinates
	}

	address := strings.TrimSpace(params.Address)
	if address == "" || geocoder == nil {
		return domain.DefaultCoordinates, OriginDefault
	}

	coords, err := geocoder.Geocode(ctx, address)
	if err != nil {
		log.Warn().
			Str("req_id", obs.RequestID(ctx)).
			Str("address", address).
			Err(err).
			Msg("Geocoding failed, using default coordinates")
		return domain.DefaultCoordinates, OriginDefault
	}
	if coords == nil {
		return domain.DefaultCoordinates, OriginDefault
	}

	return *coords, OriginAddress
}

// RankRestaurants orders restaurants by distance from origin.
//
// Ties are broken by name and then id so the order is deterministic.
// limit <= 0 returns every restaurant.
func RankRestaurants(
	origin domain.Coordinates,
	restaurants []domain.Restaurant,
	limit int,
) []domain.RankedRestaurant {
	ranked := make([]domain.RankedRestaurant, 0, len(restaurants))
	for _, r := range restaurants {
		km := geo.Distance(origin, r.Location())
		ranked = append(ranked, domain.RankedRestaurant{
			Restaurant: r,
			DistanceKm: km,
			Distance:   geo.FormatDistance(km),
		})
	}

	slices.SortStableFunc(ranked, func(a, b domain.RankedRestaurant) int {
		if c := cmp.Compare(a.DistanceKm, b.DistanceKm); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

// SearchNearby resolves the search origin and ranks the directory around it.
func SearchNearby(
	ctx context.Context,
	params domain.SearchParams,
	limit int,
	repo ports.RestaurantRepository,
	geocoder ports.Geocoder,
) (_ *SearchResult, err error) {
	defer obs.Time(ctx, "services.SearchNearby")(&err)

	restaurants, err := repo.ListRestaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("search nearby: list restaurants: %w", err)
	}

	origin, source := ResolveOrigin(ctx, params, geocoder)
	ranked := RankRestaurants(origin, restaurants, limit)

	return &SearchResult{
		Origin:      origin,
		Source:      source,
		Restaurants: ranked,
		Message:     searchMessage(len(ranked), source, strings.TrimSpace(params.Address)),
	}, nil
}

func searchMessage(n int, source OriginSource, address string) string {
	if n == 0 {
		return "No restaurants found"
	}

	noun := "restaurants"
	if n == 1 {
		noun = "restaurant"
	}

	switch source {
	case OriginCoordinates:
		return fmt.Sprintf("Found %d %s near your location", n, noun)
	case OriginAddress:
		return fmt.Sprintf("Found %d %s near %q", n, noun, address)
	default:
		return fmt.Sprintf("Found %d %s near Houston city center", n, noun)
	}
}
