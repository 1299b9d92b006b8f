package geocode

import (
	"context"
	"restaurant-finder-service/internal/domain"
	"strings"
)

type keywordLocation struct {
	Keyword string
	Coords  domain.Coordinates
}

// Order matters: matching is first-substring-wins, so "houston" shadows
// "downtown houston" for inputs containing both.
var locationKeywords = []keywordLocation{
	// Houston neighborhoods
	{"houston", domain.Coordinates{Latitude: 29.7604, Longitude: -95.3698}},
	{"downtown houston", domain.Coordinates{Latitude: 29.7523, Longitude: -95.3632}},
	{"downtown", domain.Coordinates{Latitude: 29.7523, Longitude: -95.3632}},
	{"midtown", domain.Coordinates{Latitude: 29.7408, Longitude: -95.3847}},
	{"montrose", domain.Coordinates{Latitude: 29.7441, Longitude: -95.3874}},
	{"galleria", domain.Coordinates{Latitude: 29.7412, Longitude: -95.4612}},
	{"westheimer", domain.Coordinates{Latitude: 29.7398, Longitude: -95.4321}},
	{"hillcroft", domain.Coordinates{Latitude: 29.7234, Longitude: -95.5367}},
	{"bellaire", domain.Coordinates{Latitude: 29.7056, Longitude: -95.5512}},
	{"rice village", domain.Coordinates{Latitude: 29.7168, Longitude: -95.4138}},
	{"medical center", domain.Coordinates{Latitude: 29.7089, Longitude: -95.4012}},
	{"kirby", domain.Coordinates{Latitude: 29.7352, Longitude: -95.4214}},
	{"heights", domain.Coordinates{Latitude: 29.7924, Longitude: -95.3987}},
	{"memorial", domain.Coordinates{Latitude: 29.7756, Longitude: -95.4891}},
	// Houston zip codes
	{"77002", domain.Coordinates{Latitude: 29.7523, Longitude: -95.3632}},
	{"77006", domain.Coordinates{Latitude: 29.7441, Longitude: -95.3874}},
	{"77027", domain.Coordinates{Latitude: 29.7398, Longitude: -95.4321}},
	{"77036", domain.Coordinates{Latitude: 29.7056, Longitude: -95.5512}},
	{"77057", domain.Coordinates{Latitude: 29.7312, Longitude: -95.5189}},
	{"77063", domain.Coordinates{Latitude: 29.7412, Longitude: -95.5012}},
	{"77074", domain.Coordinates{Latitude: 29.6889, Longitude: -95.5234}},
	{"77081", domain.Coordinates{Latitude: 29.7234, Longitude: -95.5367}},
	{"77098", domain.Coordinates{Latitude: 29.7352, Longitude: -95.4214}},
	{"77099", domain.Coordinates{Latitude: 29.6847, Longitude: -95.5892}},
}

// MockGeocode resolves an address by keyword matching against a fixed table
// of Houston neighborhoods and zip codes. Unmatched input resolves to
// domain.DefaultCoordinates, so the result is never nil today.
func MockGeocode(address string) *domain.Coordinates {
	addressLower := strings.ToLower(address)

	for _, kw := range locationKeywords {
		if strings.Contains(addressLower, kw.Keyword) {
			c := kw.Coords
			return &c
		}
	}

	c := domain.DefaultCoordinates
	return &c
}

// MockGeocoder implements ports.Geocoder with MockGeocode. It performs no I/O.
type MockGeocoder struct{}

func NewMockGeocoder() *MockGeocoder {
	return &MockGeocoder{}
}

func (g *MockGeocoder) Geocode(ctx context.Context, address string) (*domain.Coordinates, error) {
	return MockGeocode(address), nil
}
