package domain

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCoordinate reports a coordinate outside the WGS-84 domain or a
// non-finite component. Map clicks arrive unvalidated; the service rejects
// them explicitly instead of deriving nonsense attributes.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Geo represents a WGS-84 latitude/longitude coordinate pair.
type Geo struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ValidateCoordinate checks that lat/lng are finite and within
// [-90, 90] / [-180, 180]. Returns a wrapped ErrInvalidCoordinate otherwise.
func ValidateCoordinate(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return fmt.Errorf("%w: non-finite value", ErrInvalidCoordinate)
	}
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %v out of [-90, 90]", ErrInvalidCoordinate, lat)
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("%w: longitude %v out of [-180, 180]", ErrInvalidCoordinate, lng)
	}
	return nil
}
