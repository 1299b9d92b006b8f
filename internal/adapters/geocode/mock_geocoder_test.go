package geocode

import (
	"context"
	"restaurant-finder-service/internal/domain"
	"testing"
)

func TestMockGeocode(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    domain.Coordinates
	}{
		{
			name:    "neighborhood inside sentence",
			address: "I'm near Montrose",
			want:    domain.Coordinates{Latitude: 29.7441, Longitude: -95.3874},
		},
		{
			name:    "zip code",
			address: "77036",
			want:    domain.Coordinates{Latitude: 29.7056, Longitude: -95.5512},
		},
		{
			name:    "zip code inside address",
			address: "5000 Westpark Dr, TX 77099",
			want:    domain.Coordinates{Latitude: 29.6847, Longitude: -95.5892},
		},
		{
			name:    "case insensitive",
			address: "RICE VILLAGE",
			want:    domain.Coordinates{Latitude: 29.7168, Longitude: -95.4138},
		},
		{
			name:    "no match falls back to default",
			address: "some random text",
			want:    domain.DefaultCoordinates,
		},
		{
			name:    "empty input falls back to default",
			address: "",
			want:    domain.DefaultCoordinates,
		},
		{
			// "houston" is enumerated first and is contained in the input,
			// so it wins over "downtown houston" and "downtown".
			name:    "overlapping keys first match wins",
			address: "Downtown Houston area",
			want:    domain.Coordinates{Latitude: 29.7604, Longitude: -95.3698},
		},
		{
			name:    "downtown without city",
			address: "downtown lofts",
			want:    domain.Coordinates{Latitude: 29.7523, Longitude: -95.3632},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MockGeocode(tt.address)
			if got == nil {
				t.Fatalf("MockGeocode(%q) returned nil", tt.address)
			}
			if *got != tt.want {
				t.Fatalf("MockGeocode(%q) = %+v, want %+v", tt.address, *got, tt.want)
			}
		})
	}
}

func TestMockGeocodeReturnsCopies(t *testing.T) {
	got := MockGeocode("midtown")
	got.Latitude = 0

	again := MockGeocode("midtown")
	if again.Latitude != 29.7408 {
		t.Fatalf("table entry was mutated through returned pointer: %+v", *again)
	}

	def := MockGeocode("nowhere")
	def.Longitude = 0
	if domain.DefaultCoordinates.Longitude != -95.3698 {
		t.Fatalf("DefaultCoordinates was mutated through returned pointer")
	}
}

func TestKeywordsOrder(t *testing.T) {
	kws := make([]string, 0, len(locationKeywords))
	for _, kw := range locationKeywords {
		kws = append(kws, kw.Keyword)
	}
	if len(kws) != 24 {
		t.Fatalf("expected 24 keywords, got %d", len(kws))
	}
	if kws[0] != "houston" || kws[1] != "downtown houston" || kws[2] != "downtown" {
		t.Fatalf("unexpected leading keywords: %v", kws[:3])
	}
	if kws[len(kws)-1] != "77099" {
		t.Fatalf("last keyword = %q, want 77099", kws[len(kws)-1])
	}
}

func TestMockGeocoderImplementsPort(t *testing.T) {
	g := NewMockGeocoder()

	c, err := g.Geocode(context.Background(), "The Heights")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c == nil || c.Latitude != 29.7924 || c.Longitude != -95.3987 {
		t.Fatalf("Geocode = %+v, want heights coordinates", c)
	}
}
