package geo

import "restaurant-finder-service/internal/domain"

// GeoJSONFeatureCollection represents a collection of geographic features.
type GeoJSONFeatureCollection struct {
	Type     string           `json:"type" yaml:"type"`
	Features []GeoJSONFeature `json:"features" yaml:"features"`
}

// GeoJSONFeature represents a single point feature with its properties.
type GeoJSONFeature struct {
	Properties map[string]any  `json:"properties" yaml:"properties"`
	Type       string          `json:"type" yaml:"type"`
	Geometry   GeoJSONGeometry `json:"geometry" yaml:"geometry"`
}

// GeoJSONGeometry represents the geometry of a feature.
type GeoJSONGeometry struct {
	Type        string    `json:"type" yaml:"type"`
	Coordinates []float64 `json:"coordinates" yaml:"coordinates"` // [Lon, Lat]
}

// RankedFeatureCollection turns a ranked result list into point features,
// keeping the ranking order and attaching the distance to each feature.
func RankedFeatureCollection(ranked []domain.RankedRestaurant) GeoJSONFeatureCollection {
	fc := GeoJSONFeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]GeoJSONFeature, 0, len(ranked)),
	}

	for i, r := range ranked {
		fc.Features = append(fc.Features, GeoJSONFeature{
			Type: "Feature",
			Geometry: GeoJSONGeometry{
				Type:        "Point",
				Coordinates: r.Location().CoordsToList(),
			},
			Properties: map[string]any{
				"rank":        i + 1,
				"id":          r.ID,
				"name":        r.Name,
				"address":     r.Address,
				"cuisine":     r.Cuisine,
				"distance_km": r.DistanceKm,
				"distance":    r.Distance,
			},
		})
	}

	return fc
}
