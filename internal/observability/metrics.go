package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// survey service.
type Metrics struct {
	SurveysTotal     *prometheus.CounterVec // labels: outcome={ok,invalid,error}
	GeographyDerived *prometheus.CounterVec // labels: climate_zone
	SurveyDuration   prometheus.Histogram
	SuitabilityScore prometheus.Histogram

	// Survey store metrics.
	CacheLookups *prometheus.CounterVec // labels: result={hit,miss}

	// Survey event stream metrics.
	SurveysPublished prometheus.Counter
	PublishErrors    prometheus.Counter

	// Geocoding metrics.
	GeocodeRequests *prometheus.CounterVec   // labels: method={forward,reverse}, outcome={success,error,empty}
	GeocodeCache    *prometheus.CounterVec   // labels: method={forward,reverse}, result={hit,miss}
	GeocodeDuration *prometheus.HistogramVec // labels: method={forward,reverse}
	GeocodeEnabled  prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		SurveysTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "farm_geo",
			Name:      "surveys_total",
			Help:      "Land surveys served, by outcome.",
		}, []string{"outcome"}),
		GeographyDerived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "farm_geo",
			Name:      "geography_derived_total",
			Help:      "Fresh geography derivations (cache misses), by climate zone.",
		}, []string{"climate_zone"}),
		SurveyDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "farm_geo",
			Name:      "survey_duration_seconds",
			Help:      "Duration of a complete survey: derive or cache read, score, enrich, publish.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}),
		SuitabilityScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "farm_geo",
			Name:      "suitability_score",
			Help:      "Distribution of suitability scores served.",
			Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "farm_geo",
			Name:      "cache_lookups_total",
			Help:      "Survey store lookups by result.",
		}, []string{"result"}),
		SurveysPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "farm_geo",
			Name:      "surveys_published_total",
			Help:      "Surveys published to the event stream.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "farm_geo",
			Name:      "publish_errors_total",
			Help:      "Failed survey publishes.",
		}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "farm_geo",
			Name:      "geocode_requests_total",
			Help:      "Geocoding API requests by method and outcome.",
		}, []string{"method", "outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "farm_geo",
			Name:      "geocode_cache_total",
			Help:      "Geocoding cache lookups by method and result.",
		}, []string{"method", "result"}),
		GeocodeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "farm_geo",
			Name:      "geocode_api_duration_seconds",
			Help:      "Mapbox API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method"}),
		GeocodeEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "farm_geo",
			Name:      "geocode_enabled",
			Help:      "1 when place-name enrichment is enabled, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.SurveysTotal,
		m.GeographyDerived,
		m.SurveyDuration,
		m.SuitabilityScore,
		m.CacheLookups,
		m.SurveysPublished,
		m.PublishErrors,
		m.GeocodeRequests,
		m.GeocodeCache,
		m.GeocodeDuration,
		m.GeocodeEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		SurveysTotal:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "farm_geo", Name: "surveys_total"}, []string{"outcome"}),
		GeographyDerived: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "farm_geo", Name: "geography_derived_total"}, []string{"climate_zone"}),
		SurveyDuration:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "farm_geo", Name: "survey_duration_seconds"}),
		SuitabilityScore: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "farm_geo", Name: "suitability_score"}),
		CacheLookups:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "farm_geo", Name: "cache_lookups_total"}, []string{"result"}),
		SurveysPublished: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "farm_geo", Name: "surveys_published_total"}),
		PublishErrors:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "farm_geo", Name: "publish_errors_total"}),
		GeocodeRequests:  prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "farm_geo", Name: "geocode_requests_total"}, []string{"method", "outcome"}),
		GeocodeCache:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "farm_geo", Name: "geocode_cache_total"}, []string{"method", "result"}),
		GeocodeDuration:  prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "farm_geo", Name: "geocode_api_duration_seconds"}, []string{"method"}),
		GeocodeEnabled:   prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "farm_geo", Name: "geocode_enabled"}),
	}
}
