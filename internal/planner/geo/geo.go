// Package geo holds the coordinate math shared by scoring and sequencing.
package geo

import (
	"math"

	"github.com/youra031220/Seoulmatebeta/internal/types"
)

const (
	earthRadiusKm = 6371

	// Blended walking/transit speed used to approximate leg durations.
	avgSpeedKmh = 4
)

// HaversineKm calculates the great-circle distance between two coordinates
// in kilometers.
func HaversineKm(a, b types.GeoPoint) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lon1 := a.Longitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	lon2 := b.Longitude * math.Pi / 180

	dlat := lat2 - lat1
	dlon := lon2 - lon1

	h := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// TravelMinutes approximates the duration of the leg between two points at a
// constant average speed.
func TravelMinutes(a, b types.GeoPoint) int {
	dist := HaversineKm(a, b)
	hours := dist / avgSpeedKmh
	return int(math.Round(hours * 60))
}
