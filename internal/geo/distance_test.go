package geo

import (
	"math"
	"testing"

	"restaurant-finder-service/internal/domain"
)

func TestCalculateDistanceIdentity(t *testing.T) {
	points := []domain.Coordinates{
		{Latitude: 29.7604, Longitude: -95.3698},
		{Latitude: 0, Longitude: 0},
		{Latitude: -33.8688, Longitude: 151.2093},
		{Latitude: 90, Longitude: 180},
	}

	for _, p := range points {
		if d := CalculateDistance(p.Latitude, p.Longitude, p.Latitude, p.Longitude); d != 0 {
			t.Errorf("distance from %v to itself = %v, want 0", p, d)
		}
	}
}

func TestCalculateDistanceSymmetry(t *testing.T) {
	pairs := [][2]domain.Coordinates{
		{{Latitude: 29.7604, Longitude: -95.3698}, {Latitude: 29.7523, Longitude: -95.3632}},
		{{Latitude: 29.7924, Longitude: -95.3987}, {Latitude: 29.6847, Longitude: -95.5892}},
		{{Latitude: 51.5074, Longitude: -0.1278}, {Latitude: 40.7128, Longitude: -74.0060}},
		{{Latitude: -6.2, Longitude: 106.816}, {Latitude: -6.9175, Longitude: 107.6191}},
	}

	for _, p := range pairs {
		ab := Distance(p[0], p[1])
		ba := Distance(p[1], p[0])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("distance not symmetric for %v: %v vs %v", p, ab, ba)
		}
		if ab < 0 {
			t.Errorf("distance for %v is negative: %v", p, ab)
		}
	}
}

func TestCalculateDistanceKnownValues(t *testing.T) {
	// Houston center to Downtown Houston is roughly 1.1 km.
	d := CalculateDistance(29.7604, -95.3698, 29.7523, -95.3632)
	if d <= 0 || d >= 2 {
		t.Fatalf("Houston -> Downtown = %v km, want (0, 2)", d)
	}

	// London to New York ~ 5570 km.
	d = CalculateDistance(51.5074, -0.1278, 40.7128, -74.0060)
	if d < 5500 || d > 5650 {
		t.Fatalf("London -> New York = %v km, want ~5570", d)
	}

	// A quarter of the equator.
	d = CalculateDistance(0, 0, 0, 90)
	want := EarthRadiusKm * math.Pi / 2
	if math.Abs(d-want) > 1e-6 {
		t.Fatalf("quarter equator = %v km, want %v", d, want)
	}
}

func TestCalculateDistancePropagatesNaN(t *testing.T) {
	if d := CalculateDistance(math.NaN(), 0, 0, 0); !math.IsNaN(d) {
		t.Fatalf("expected NaN, got %v", d)
	}
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		km   float64
		want string
	}{
		{km: 0, want: "0m"},
		{km: 0.35, want: "350m"},
		{km: 0.999, want: "999m"},
		{km: 1.0, want: "1.0 km"},
		{km: 2.456, want: "2.5 km"},
		{km: 12.04, want: "12.0 km"},
		{km: 1.25, want: "1.3 km"},
		{km: 2.25, want: "2.3 km"},
		{km: 1.05, want: "1.1 km"},
		{km: 19.95, want: "19.9 km"},
		{km: 0.0125, want: "13m"},
	}

	for _, tt := range tests {
		if got := FormatDistance(tt.km); got != tt.want {
			t.Errorf("FormatDistance(%v) = %q, want %q", tt.km, got, tt.want)
		}
	}
}

func TestRankedFeatureCollection(t *testing.T) {
	ranked := []domain.RankedRestaurant{
		{
			Restaurant: domain.Restaurant{ID: "r1", Name: "Near", Latitude: 29.75, Longitude: -95.36},
			DistanceKm: 0.4,
			Distance:   "400m",
		},
		{
			Restaurant: domain.Restaurant{ID: "r2", Name: "Far", Latitude: 29.70, Longitude: -95.55},
			DistanceKm: 18.2,
			Distance:   "18.2 km",
		},
	}

	fc := RankedFeatureCollection(ranked)
	if fc.Type != "FeatureCollection" {
		t.Fatalf("type = %q, want FeatureCollection", fc.Type)
	}
	if len(fc.Features) != 2 {
		t.Fatalf("expected 2 features, got %d", len(fc.Features))
	}

	first := fc.Features[0]
	if first.Geometry.Coordinates[0] != -95.36 || first.Geometry.Coordinates[1] != 29.75 {
		t.Fatalf("coordinates = %v, want [lon, lat]", first.Geometry.Coordinates)
	}
	if first.Properties["rank"] != 1 || first.Properties["distance"] != "400m" {
		t.Fatalf("unexpected properties: %v", first.Properties)
	}
}
