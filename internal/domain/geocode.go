package domain

import (
	"context"
	"log/slog"
)

// EnrichWithPlace attempts to label a survey with a human-readable place
// name via reverse geocoding. If geocoder is nil or the lookup fails, the
// survey is returned with PlaceSource set accordingly (graceful
// degradation — a survey without a label is still a valid survey).
func EnrichWithPlace(ctx context.Context, survey LandSurvey, geocoder Geocoder, logger *slog.Logger) LandSurvey {
	if geocoder == nil {
		return survey
	}

	result, err := geocoder.ReverseGeocode(ctx, survey.Geo.Lat, survey.Geo.Lng)
	if err != nil {
		logger.Warn("reverse geocoding failed",
			"survey_id", survey.ID,
			"lat", survey.Geo.Lat,
			"lng", survey.Geo.Lng,
			"error", err,
		)
		survey.PlaceSource = "failed"
		return survey
	}

	if result.FormattedAddress == "" {
		survey.PlaceSource = "original"
		return survey
	}

	survey.FormattedAddress = result.FormattedAddress
	survey.PlaceName = result.PlaceName
	survey.PlaceSource = "reverse"
	return survey
}
