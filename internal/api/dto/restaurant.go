package dto

import "restaurant-finder-service/internal/domain"

type OriginResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Source    string  `json:"source"`
}

// RestaurantResponse is a directory entry with its distance from the search origin.
type RestaurantResponse struct {
	domain.Restaurant
	DistanceKm float64 `json:"distanceKm"`
	Distance   string  `json:"distance"`
}

// ApiResponse is the body of GET /api/restaurants.
type ApiResponse struct {
	Restaurants []RestaurantResponse `json:"restaurants"`
	Message     string               `json:"message,omitempty"`
	Error       string               `json:"error,omitempty"`
	Origin      *OriginResponse      `json:"origin,omitempty"`
}
