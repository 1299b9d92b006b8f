// Package geo implements great-circle distance math and distance formatting.
package geo

import (
	"fmt"
	"math"
	"math/big"

	"restaurant-finder-service/internal/domain"
)

// EarthRadiusKm is the mean Earth radius used by CalculateDistance.
const EarthRadiusKm = 6371

func toRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// CalculateDistance returns the Haversine distance in kilometers between
// (lat1, lon1) and (lat2, lon2). Inputs are not validated; NaN and Inf
// propagate through the arithmetic.
func CalculateDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// Distance is CalculateDistance for two coordinate values.
func Distance(from, to domain.Coordinates) float64 {
	return CalculateDistance(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
}

// FormatDistance renders distances under 1 km in whole meters ("350m") and
// everything else in kilometers with one decimal ("2.5 km").
// Ties round up, so 1.25 renders as "1.3 km".
func FormatDistance(distanceKm float64) string {
	if distanceKm < 1 {
		return fmt.Sprintf("%dm", int(math.Round(distanceKm*1000)))
	}
	return oneDecimal(distanceKm) + " km"
}

// oneDecimal rounds the exact binary value of v to one decimal place,
// picking the larger candidate when v lies halfway between two.
func oneDecimal(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Sprintf("%.1f", v)
	}

	f := new(big.Float).SetPrec(128).SetFloat64(v)
	f.Mul(f, big.NewFloat(10))
	f.Add(f, big.NewFloat(0.5))
	tenths, _ := f.Int(nil)

	whole, frac := new(big.Int).QuoRem(tenths, big.NewInt(10), new(big.Int))
	return whole.String() + "." + frac.String()
}
