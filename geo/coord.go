// Package geo holds the coordinate type and spherical distance math
// used when corpora carry geotagged documents.
package geo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EarthRadiusKm is the mean radius of the Earth.
const EarthRadiusKm = 6371.0

var ErrBadCoord = errors.New("geo: malformed coordinate")

// Coord is a point on the sphere in decimal degrees.
type Coord struct {
	Lat  float64
	Long float64
}

// NewCoord validates the latitude and longitude ranges.
func NewCoord(lat, long float64) (Coord, error) {
	if lat < -90 || lat > 90 {
		return Coord{}, fmt.Errorf("%w: latitude %v out of [-90, 90]", ErrBadCoord, lat)
	}
	if long < -180 || long > 180 {
		return Coord{}, fmt.Errorf("%w: longitude %v out of [-180, 180]", ErrBadCoord, long)
	}
	return Coord{Lat: lat, Long: long}, nil
}

// ParseCoord reads a "lat,long" pair, the form corpora store in their
// coord field.
func ParseCoord(s string) (Coord, error) {
	latStr, longStr, ok := strings.Cut(s, ",")
	if !ok {
		return Coord{}, fmt.Errorf("%w: %q is not lat,long", ErrBadCoord, s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return Coord{}, fmt.Errorf("%w: latitude %q", ErrBadCoord, latStr)
	}
	long, err := strconv.ParseFloat(strings.TrimSpace(longStr), 64)
	if err != nil {
		return Coord{}, fmt.Errorf("%w: longitude %q", ErrBadCoord, longStr)
	}
	return NewCoord(lat, long)
}

// String renders the coordinate the way ParseCoord reads it.
func (c Coord) String() string {
	return fmt.Sprintf("%v,%v", c.Lat, c.Long)
}

// SphereDist returns the great-circle distance in kilometers, by the
// haversine formula.
func SphereDist(a, b Coord) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLong := radians(b.Long - a.Long)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLong/2)*math.Sin(dLong/2)
	return 2 * EarthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

// DegreeDist returns the straight-line distance in degrees, with the
// longitude difference wrapped across the antimeridian.
func DegreeDist(a, b Coord) float64 {
	dLat := a.Lat - b.Lat
	dLong := math.Abs(a.Long - b.Long)
	if dLong > 180 {
		dLong = 360 - dLong
	}
	return math.Sqrt(dLat*dLat + dLong*dLong)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
