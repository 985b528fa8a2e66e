// Package httpapi exposes the survey service over HTTP: health, readiness,
// and metrics probes plus the game-facing v1 API.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agrovista/farm-geo-service/internal/domain"
	"github.com/agrovista/farm-geo-service/internal/farm"
	"github.com/agrovista/farm-geo-service/internal/surveyor"
)

// SurveyService is the surveyor surface the API serves.
type SurveyService interface {
	Survey(ctx context.Context, lat, lng float64, cropID string) (domain.LandSurvey, error)
	SurveyByPlace(ctx context.Context, place, region, cropID string) (domain.LandSurvey, error)
	Geography(ctx context.Context, lat, lng float64) (domain.GeographicAttributes, error)
	CheckReadiness(ctx context.Context) error
}

// Server exposes the survey API and operational endpoints.
type Server struct {
	httpServer *http.Server
	svc        SurveyService
	logger     *slog.Logger
}

// NewServer creates the HTTP server with all routes mounted.
func NewServer(addr string, svc SurveyService, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		svc:    svc,
		logger: logger,
	}
	s.httpServer.Handler = requestID(mux)

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /v1/crops", s.handleCrops)
	mux.HandleFunc("GET /v1/geography", s.handleGeography)
	mux.HandleFunc("GET /v1/survey", s.handleSurvey)
	mux.HandleFunc("GET /v1/farm", s.handleFarm)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// requestID tags every response with an X-Request-ID, minting one when the
// client did not send its own.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.svc.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) handleCrops(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"crops": domain.Crops()})
}

func (s *Server) handleGeography(w http.ResponseWriter, r *http.Request) {
	lat, lng, ok := coordParams(w, r)
	if !ok {
		return
	}

	attrs, err := s.svc.Geography(r.Context(), lat, lng)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, attrs)
}

func (s *Server) handleSurvey(w http.ResponseWriter, r *http.Request) {
	crop := r.URL.Query().Get("crop")

	if place := r.URL.Query().Get("place"); place != "" {
		survey, err := s.svc.SurveyByPlace(r.Context(), place, r.URL.Query().Get("region"), crop)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, survey)
		return
	}

	lat, lng, ok := coordParams(w, r)
	if !ok {
		return
	}

	survey, err := s.svc.Survey(r.Context(), lat, lng, crop)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, survey)
}

func (s *Server) handleFarm(w http.ResponseWriter, r *http.Request) {
	lat, lng, ok := coordParams(w, r)
	if !ok {
		return
	}

	survey, err := s.svc.Survey(r.Context(), lat, lng, r.URL.Query().Get("crop"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, farm.BuildGrid(survey))
}

// coordParams parses the lat/lng query parameters, writing a 400 and
// returning ok=false when either is missing or not a number.
func coordParams(w http.ResponseWriter, r *http.Request) (lat, lng float64, ok bool) {
	q := r.URL.Query()
	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(q.Get("lng"), 64)
	if errLat != nil || errLng != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "lat and lng query parameters are required numbers",
		})
		return 0, 0, false
	}
	return lat, lng, true
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCoordinate):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, surveyor.ErrGeocodingDisabled), errors.Is(err, surveyor.ErrPlaceNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response body
}
