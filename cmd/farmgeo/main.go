package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/agrovista/farm-geo-service/internal/adapter/httpapi"
	kafkaadapter "github.com/agrovista/farm-geo-service/internal/adapter/kafka"
	"github.com/agrovista/farm-geo-service/internal/adapter/mapbox"
	"github.com/agrovista/farm-geo-service/internal/adapter/store"
	"github.com/agrovista/farm-geo-service/internal/config"
	"github.com/agrovista/farm-geo-service/internal/domain"
	"github.com/agrovista/farm-geo-service/internal/entropy"
	"github.com/agrovista/farm-geo-service/internal/observability"
	"github.com/agrovista/farm-geo-service/internal/surveyor"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open survey store", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	if n, err := db.CountPlots(context.Background()); err == nil {
		logger.Info("survey store opened", "path", cfg.DBPath, "plots", n)
	}

	// Initialize geocoder (feature-flagged via MAPBOX_ENABLED / MAPBOX_TOKEN).
	var geocoder domain.Geocoder
	if cfg.MapboxEnabled {
		client := mapbox.NewClient(cfg.MapboxToken, cfg.MapboxTimeout, logger, metrics)
		geocoder = mapbox.NewCachedGeocoder(client, cfg.MapboxCacheSize, metrics)
		metrics.GeocodeEnabled.Set(1)
		logger.Info("mapbox geocoding enabled", "cache_size", cfg.MapboxCacheSize, "timeout", cfg.MapboxTimeout)
	} else {
		logger.Info("mapbox geocoding disabled")
	}

	var publisher surveyor.Publisher
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		publisher = writer
		logger.Info("kafka survey stream enabled", "topic", cfg.KafkaSurveyTopic)
	}

	// A nonzero seed pins every jitter draw, handy for demo worlds and
	// debugging. Production runs leave it at 0 for real entropy.
	var rng domain.Source
	if cfg.SurveySeed != 0 {
		rng = entropy.NewSeeded(cfg.SurveySeed)
		logger.Warn("running with fixed survey seed", "seed", cfg.SurveySeed)
	} else {
		rng = entropy.NewCrypto()
	}

	svc := surveyor.New(db, geocoder, publisher, rng, cfg.SoilNoise, logger, metrics)

	srv := httpapi.NewServer(cfg.HTTPAddr, svc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}
	if err := db.Close(); err != nil {
		logger.Error("survey store close error", "error", err)
	}

	logger.Info("shutdown complete")
}
