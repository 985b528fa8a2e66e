package domain

import "context"

// GeocodingResult contains location data returned by a geocoding provider.
type GeocodingResult struct {
	Lat              float64
	Lng              float64
	FormattedAddress string
	PlaceName        string
	Confidence       float64 // 0.0-1.0 provider confidence score
}

// Geocoder resolves between place names and coordinates for surveys.
type Geocoder interface {
	// ForwardGeocode converts a place name and region to coordinates,
	// used to survey by place name instead of a map click.
	ForwardGeocode(ctx context.Context, name, region string) (GeocodingResult, error)

	// ReverseGeocode converts coordinates to place details, used to label
	// the plot the player clicked.
	ReverseGeocode(ctx context.Context, lat, lng float64) (GeocodingResult, error)
}
