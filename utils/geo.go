package utils

import (
	"fmt"
	"math"
)

const earthRadiusKm = 6371

// Coordinates is a resolved client position. A nil *Coordinates means the
// position is unknown; zero values are valid points on the equator and
// prime meridian.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Distance computes the great-circle distance between two coordinates
// using the Haversine formula. The result is in kilometers, rounded to
// one decimal place.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	distance := earthRadiusKm * c

	return math.Round(distance*10) / 10
}

func toRad(value float64) float64 {
	return value * math.Pi / 180
}

// FormatDistance renders a distance for display: sub-kilometer values as
// whole meters, everything else as kilometers with one decimal.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%dm away", int(math.Round(km*1000)))
	}
	return fmt.Sprintf("%.1fkm away", km)
}
