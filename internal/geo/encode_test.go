package geo

import (
	"bytes"
	"encoding/json"
	"restaurant-finder-service/internal/domain"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func sampleCollection() GeoJSONFeatureCollection {
	return RankedFeatureCollection([]domain.RankedRestaurant{{
		Restaurant: domain.Restaurant{ID: "1", Name: "Pho Saigon", Latitude: 29.7056, Longitude: -95.5512},
		DistanceKm: 1.25,
		Distance:   "1.3 km",
	}})
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, sampleCollection(), FormatJSON); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var got GeoJSONFeatureCollection
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(got.Features) != 1 || got.Features[0].Geometry.Coordinates[0] != -95.5512 {
		t.Fatalf("unexpected collection: %+v", got)
	}
}

func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, sampleCollection(), FormatYAML); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "type: FeatureCollection") {
		t.Fatalf("unexpected yaml: %s", buf.String())
	}

	var got GeoJSONFeatureCollection
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if got.Features[0].Properties["name"] != "Pho Saigon" {
		t.Fatalf("unexpected properties: %+v", got.Features[0].Properties)
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, sampleCollection(), "xml"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
