package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smartwaste360/gateway/internal/pkg/models"
)

func TestCalculateDistance(t *testing.T) {
	// Hyderabad city center to Secunderabad, roughly 7.5 km apart
	hyderabad := GeoPoint{Latitude: 17.3850, Longitude: 78.4867}
	secunderabad := GeoPoint{Latitude: 17.4399, Longitude: 78.4983}

	dist := CalculateDistance(hyderabad, secunderabad)

	assert.InDelta(t, 6.2, dist, 1.0)
}

func TestCalculateDistance_SamePoint(t *testing.T) {
	p := GeoPoint{Latitude: 17.38, Longitude: 78.48}
	assert.Equal(t, 0.0, CalculateDistance(p, p))
}

func TestSameCell(t *testing.T) {
	base := models.Position{Latitude: 17.385000, Longitude: 78.486700}
	nearby := models.Position{Latitude: 17.385010, Longitude: 78.486710} // a meter away
	faraway := models.Position{Latitude: 17.500000, Longitude: 78.600000}

	assert.True(t, SameCell(base, nearby, FixCellPrecision))
	assert.False(t, SameCell(base, faraway, FixCellPrecision))
}

func TestValidCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng float64
		want     bool
	}{
		{"valid", 17.38, 78.48, true},
		{"lat too high", 91, 0, false},
		{"lat too low", -91, 0, false},
		{"lng too high", 0, 181, false},
		{"lng too low", 0, -181, false},
		{"boundary", 90, 180, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidCoordinates(tt.lat, tt.lng))
		})
	}
}
