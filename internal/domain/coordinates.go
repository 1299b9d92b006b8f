package domain

// Immutable geographic coordinates in decimal degrees (latitude, longitude).
type Coordinates struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// DefaultCoordinates is the Houston city center, used whenever a search
// location cannot be resolved.
var DefaultCoordinates = Coordinates{Latitude: 29.7604, Longitude: -95.3698}

// Return coordinates as [lon, lat] for GeoJSON compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Longitude, c.Latitude} }
