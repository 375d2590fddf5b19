package geo

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	madrid    = Point{Lat: 40.4168, Lon: -3.7038}
	barcelona = Point{Lat: 41.3851, Lon: 2.1734}
	sevilla   = Point{Lat: 37.3891, Lon: -5.9845}
)

func TestDistance_KnownCities(t *testing.T) {
	d, err := DistanceBetween(madrid, barcelona)
	require.NoError(t, err)
	assert.InDelta(t, 504.64, d, 1)

	d, err = DistanceBetween(madrid, sevilla)
	require.NoError(t, err)
	assert.InDelta(t, 391.56, d, 2)
}

func TestDistance_Properties(t *testing.T) {
	d, err := DistanceBetween(madrid, madrid)
	require.NoError(t, err)
	assert.Zero(t, d)

	ab, _ := DistanceBetween(madrid, barcelona)
	ba, _ := DistanceBetween(barcelona, madrid)
	assert.InDelta(t, ab, ba, 1e-9)

	poles, err := Distance(90, 0, -90, 0)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi*EarthRadiusKm, poles, 1e-6)
}

func TestDistance_NearAntipodal(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
	}{
		{"high latitudes", -88.5, -179.5, 88.5, 0.5},
		{"equator", 0, 0, 0, 180},
		{"equator negative", 0, -90, 0, 90},
		{"mid latitudes", 33.3, -120.25, -33.3, 59.75},
		{"poles", 90, 45, -90, -135},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Distance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			require.NoError(t, err)
			require.False(t, math.IsNaN(d), "distance must be a number")
			assert.InDelta(t, math.Pi*EarthRadiusKm, d, 1e-3)
		})
	}
}

func TestDistance_AntipodalGridIsFinite(t *testing.T) {
	for lat := -90.0; lat <= 90; lat += 0.5 {
		for lon := -180.0; lon <= 0; lon += 0.5 {
			d, err := Distance(lat, lon, -lat, lon+180)
			require.NoError(t, err)
			if math.IsNaN(d) || math.IsInf(d, 0) || d > math.Pi*EarthRadiusKm+1e-6 {
				t.Fatalf("Distance(%g, %g, %g, %g) = %v", lat, lon, -lat, lon+180, d)
			}
		}
	}
}

func TestDistanceMeters(t *testing.T) {
	km, _ := DistanceBetween(madrid, barcelona)
	m, err := DistanceMeters(madrid.Lat, madrid.Lon, barcelona.Lat, barcelona.Lon)
	require.NoError(t, err)
	assert.InDelta(t, km*1000, m, 1e-6)
}

func TestDistance_OutOfRange(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		field                  string
	}{
		{"lat1 above", 91, 0, 0, 0, "lat1"},
		{"lat2 below", 0, 0, -90.5, 0, "lat2"},
		{"lon1 above", 0, 180.1, 0, 0, "lon1"},
		{"lon2 below", 0, 0, 0, -181, "lon2"},
		{"nan", math.NaN(), 0, 0, 0, "lat1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Distance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			require.ErrorIs(t, err, ErrCoordinateOutOfRange)

			var rangeErr *CoordinateRangeError
			require.True(t, errors.As(err, &rangeErr))
			assert.Equal(t, tt.field, rangeErr.Field)
		})
	}

	_, err := DistanceMeters(91, 0, 0, 0)
	assert.ErrorIs(t, err, ErrCoordinateOutOfRange)
}

func TestDistance_BoundariesAccepted(t *testing.T) {
	_, err := Distance(-90, -180, 90, 180)
	assert.NoError(t, err)
}
