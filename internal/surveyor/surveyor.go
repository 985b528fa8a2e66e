// Package surveyor orchestrates a land survey: load or derive the plot's
// attributes, score the requested crop, enrich with a place name, and
// publish the result to the event stream.
package surveyor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/agrovista/farm-geo-service/internal/domain"
	"github.com/agrovista/farm-geo-service/internal/observability"
)

// ErrGeocodingDisabled is returned by SurveyByPlace when no geocoder is
// configured.
var ErrGeocodingDisabled = errors.New("geocoding is not enabled")

// ErrPlaceNotFound is returned when forward geocoding yields no coordinate
// for the requested place.
var ErrPlaceNotFound = errors.New("place not found")

// Store caches the first-derived attributes per plot.
type Store interface {
	GetAttributes(ctx context.Context, plotID string) (domain.GeographicAttributes, bool, error)
	PutAttributes(ctx context.Context, plotID string, geo domain.Geo, attrs domain.GeographicAttributes, derivedAt time.Time) error
	Ping(ctx context.Context) error
}

// Publisher emits completed surveys to the analytics event stream.
type Publisher interface {
	PublishSurvey(ctx context.Context, survey domain.LandSurvey) error
}

// Surveyor wires the geography model to its store, geocoder, and publisher.
type Surveyor struct {
	store     Store
	geocoder  domain.Geocoder // nil disables place enrichment
	publisher Publisher       // nil disables the event stream
	rng       domain.Source
	soilNoise bool
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a Surveyor. geocoder and publisher may be nil; the survey
// flow degrades gracefully without them.
func New(store Store, geocoder domain.Geocoder, publisher Publisher, rng domain.Source, soilNoise bool, logger *slog.Logger, metrics *observability.Metrics) *Surveyor {
	return &Surveyor{
		store:     store,
		geocoder:  geocoder,
		publisher: publisher,
		rng:       rng,
		soilNoise: soilNoise,
		logger:    logger,
		metrics:   metrics,
	}
}

// CheckReadiness reports whether the surveyor can serve traffic: the plot
// store must be reachable.
func (s *Surveyor) CheckReadiness(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		return fmt.Errorf("plot store unreachable: %w", err)
	}
	return nil
}

// Geography returns the plot's attributes: the cached first derivation when
// one exists, a fresh (and persisted) derivation otherwise.
func (s *Surveyor) Geography(ctx context.Context, lat, lng float64) (domain.GeographicAttributes, error) {
	if err := domain.ValidateCoordinate(lat, lng); err != nil {
		s.metrics.SurveysTotal.WithLabelValues("invalid").Inc()
		return domain.GeographicAttributes{}, err
	}

	plotID := domain.GeneratePlotID(lat, lng)

	attrs, found, err := s.store.GetAttributes(ctx, plotID)
	if err != nil {
		return domain.GeographicAttributes{}, err
	}
	if found {
		s.metrics.CacheLookups.WithLabelValues("hit").Inc()
		return attrs, nil
	}
	s.metrics.CacheLookups.WithLabelValues("miss").Inc()

	attrs, err = domain.DeriveGeography(lat, lng, s.rng, s.soilNoise)
	if err != nil {
		return domain.GeographicAttributes{}, err
	}
	s.metrics.GeographyDerived.WithLabelValues(string(attrs.ClimateZone)).Inc()

	if err := s.store.PutAttributes(ctx, plotID, domain.Geo{Lat: lat, Lng: lng}, attrs, time.Now()); err != nil {
		// The derivation is still good; losing the cache write only means
		// the next visit re-rolls the jitter.
		s.logger.Warn("persist plot attributes failed", "plot_id", plotID, "error", err)
	}

	return attrs, nil
}

// Survey runs the full flow for a coordinate and crop.
func (s *Surveyor) Survey(ctx context.Context, lat, lng float64, cropID string) (domain.LandSurvey, error) {
	start := time.Now()

	attrs, err := s.Geography(ctx, lat, lng)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidCoordinate) {
			s.metrics.SurveysTotal.WithLabelValues("error").Inc()
		}
		return domain.LandSurvey{}, err
	}

	survey := domain.ComposeSurvey(lat, lng, attrs, cropID)
	survey = domain.EnrichWithPlace(ctx, survey, s.geocoder, s.logger)

	s.publish(ctx, survey)

	s.metrics.SurveysTotal.WithLabelValues("ok").Inc()
	s.metrics.SuitabilityScore.Observe(float64(survey.Score))
	s.metrics.SurveyDuration.Observe(time.Since(start).Seconds())

	s.logger.Info("survey completed",
		"plot_id", survey.ID,
		"crop", survey.CropID,
		"climate_zone", survey.Attributes.ClimateZone,
		"score", survey.Score,
	)

	return survey, nil
}

// SurveyByPlace forward-geocodes a place name and surveys the resulting
// coordinate.
func (s *Surveyor) SurveyByPlace(ctx context.Context, place, region, cropID string) (domain.LandSurvey, error) {
	if s.geocoder == nil {
		return domain.LandSurvey{}, ErrGeocodingDisabled
	}

	result, err := s.geocoder.ForwardGeocode(ctx, place, region)
	if err != nil {
		return domain.LandSurvey{}, fmt.Errorf("forward geocode %q: %w", place, err)
	}
	if result.Lat == 0 && result.Lng == 0 {
		return domain.LandSurvey{}, fmt.Errorf("%w: %q", ErrPlaceNotFound, place)
	}

	return s.Survey(ctx, result.Lat, result.Lng, cropID)
}

// publish emits the survey if a publisher is configured. Publish failures
// are logged and counted but never fail the survey.
func (s *Surveyor) publish(ctx context.Context, survey domain.LandSurvey) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishSurvey(ctx, survey); err != nil {
		s.metrics.PublishErrors.Inc()
		s.logger.Warn("publish survey failed", "plot_id", survey.ID, "error", err)
		return
	}
	s.metrics.SurveysPublished.Inc()
}
