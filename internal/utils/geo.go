package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/smartwaste360/gateway/internal/pkg/models"
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// FixCellPrecision is the geohash precision used to decide whether two
// position fixes land in the same cell. Precision 7 cells are ~150m wide,
// well under the smallest query radius in use.
const FixCellPrecision = 7

// EncodePosition converts a position fix to a geohash string
func EncodePosition(pos models.Position, precision uint) string {
	return geohash.EncodeWithPrecision(pos.Latitude, pos.Longitude, precision)
}

// SameCell reports whether two fixes fall into the same geohash cell
func SameCell(a, b models.Position, precision uint) bool {
	return EncodePosition(a, precision) == EncodePosition(b, precision)
}

// CalculateDistance calculates the distance between two points in kilometers
// using the Haversine formula
func CalculateDistance(point1, point2 GeoPoint) float64 {
	// Earth's radius in kilometers
	const earthRadius = 6371.0

	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// ValidCoordinates reports whether a latitude/longitude pair is in range
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
