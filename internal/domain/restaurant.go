package domain

// Restaurant is a single directory entry as stored in restaurants.json.
type Restaurant struct {
	ID                string  `json:"id" validate:"required"`
	Name              string  `json:"name" validate:"required"`
	Address           string  `json:"address" validate:"required"`
	Cuisine           string  `json:"cuisine"`
	Rating            float64 `json:"rating" validate:"gte=0,lte=5"`
	PriceRange        string  `json:"priceRange"`
	OpeningHours      string  `json:"openingHours"`
	ClosingHours      string  `json:"closingHours"`
	OperatingHours    string  `json:"operatingHours,omitempty"`
	Latitude          float64 `json:"latitude" validate:"latitude"`
	Longitude         float64 `json:"longitude" validate:"longitude"`
	Phone             string  `json:"phone"`
	Description       string  `json:"description"`
	VegetarianOptions string  `json:"vegetarianOptions,omitempty"`
	SignatureDishes   string  `json:"signatureDishes,omitempty"`
	Website           string  `json:"website,omitempty" validate:"omitempty,url"`
	SpecialFeatures   string  `json:"specialFeatures,omitempty"`
}

// Location returns the stored coordinates of the restaurant.
func (r Restaurant) Location() Coordinates {
	return Coordinates{Latitude: r.Latitude, Longitude: r.Longitude}
}

// RankedRestaurant pairs a restaurant with its distance from a search origin.
type RankedRestaurant struct {
	Restaurant
	DistanceKm float64 `json:"distanceKm"`
	Distance   string  `json:"distance"`
}

// SearchParams describes where a nearby search starts from.
// Latitude and Longitude take precedence over Address when both are set.
type SearchParams struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Address   string   `json:"address,omitempty"`
}

// HasCoordinates reports whether both latitude and longitude were supplied.
func (p SearchParams) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}
