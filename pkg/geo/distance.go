// Package geo computes great-circle distances between GPS coordinates using
// the haversine formula on a spherical Earth.
package geo

import (
	"errors"
	"fmt"
	"math"
)

// EarthRadiusKm is the mean Earth radius used by every calculation.
const EarthRadiusKm = 6371.0

// ErrCoordinateOutOfRange is matched by every CoordinateRangeError.
var ErrCoordinateOutOfRange = errors.New("coordinate out of range")

// CoordinateRangeError names the coordinate that fell outside its valid range.
type CoordinateRangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *CoordinateRangeError) Error() string {
	return fmt.Sprintf("%s %g out of range [%g, %g]", e.Field, e.Value, e.Min, e.Max)
}

func (e *CoordinateRangeError) Is(target error) bool {
	return target == ErrCoordinateOutOfRange
}

// Point is a latitude/longitude pair in decimal degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Distance returns the great-circle distance in kilometers.
func Distance(lat1, lon1, lat2, lon2 float64) (float64, error) {
	if err := checkLat("lat1", lat1); err != nil {
		return 0, err
	}
	if err := checkLon("lon1", lon1); err != nil {
		return 0, err
	}
	if err := checkLat("lat2", lat2); err != nil {
		return 0, err
	}
	if err := checkLon("lon2", lon2); err != nil {
		return 0, err
	}

	phi1 := radians(lat1)
	phi2 := radians(lat2)
	dPhi := radians(lat2 - lat1)
	dLambda := radians(lon2 - lon1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	// Rounding can push a just past 1 for near-antipodal points.
	a = math.Min(1, math.Max(0, a))
	c := 2 * math.Asin(math.Sqrt(a))

	return EarthRadiusKm * c, nil
}

// DistanceMeters is Distance expressed in meters.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) (float64, error) {
	km, err := Distance(lat1, lon1, lat2, lon2)
	if err != nil {
		return 0, err
	}
	return km * 1000, nil
}

// DistanceBetween is Distance for two points.
func DistanceBetween(a, b Point) (float64, error) {
	return Distance(a.Lat, a.Lon, b.Lat, b.Lon)
}

func checkLat(field string, v float64) error {
	if math.IsNaN(v) || v < -90 || v > 90 {
		return &CoordinateRangeError{Field: field, Value: v, Min: -90, Max: 90}
	}
	return nil
}

func checkLon(field string, v float64) error {
	if math.IsNaN(v) || v < -180 || v > 180 {
		return &CoordinateRangeError{Field: field, Value: v, Min: -180, Max: 180}
	}
	return nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
