// Package kafka publishes completed land surveys to the game's analytics
// event stream.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/agrovista/farm-geo-service/internal/config"
	"github.com/agrovista/farm-geo-service/internal/domain"
)

// Writer produces survey events to a Kafka topic.
// It implements surveyor.Publisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured survey topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSurveyTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// PublishSurvey serializes and publishes one completed land survey.
func (w *Writer) PublishSurvey(ctx context.Context, survey domain.LandSurvey) error {
	msg, err := serializeToMessage(survey)
	if err != nil {
		return err
	}
	return w.writer.WriteMessages(ctx, msg)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a LandSurvey into a Kafka message keyed by
// plot ID, so all surveys of one plot land in the same partition.
func serializeToMessage(survey domain.LandSurvey) (kafkago.Message, error) {
	data, err := json.Marshal(survey)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize land survey: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(survey.ID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "crop_id", Value: []byte(survey.CropID)},
			{Key: "climate_zone", Value: []byte(survey.Attributes.ClimateZone)},
			{Key: "surveyed_at", Value: []byte(survey.SurveyedAt.Format(time.RFC3339))},
		},
	}, nil
}
