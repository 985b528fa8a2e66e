//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"

	kafkaadapter "github.com/agrovista/farm-geo-service/internal/adapter/kafka"
	"github.com/agrovista/farm-geo-service/internal/config"
	"github.com/agrovista/farm-geo-service/internal/domain"
	"github.com/agrovista/farm-geo-service/internal/entropy"
)

const testSurveyTopic = "test-land-surveys"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startKafka spins up a single-node Kafka container and returns its broker address.
func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()

	container, err := tckafka.Run(ctx, "confluentinc/confluent-local:7.5.0",
		tckafka.WithClusterID("test-cluster"))
	require.NoError(t, err, "start kafka container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err, "resolve kafka brokers")
	require.NotEmpty(t, brokers)
	return brokers[0]
}

func createTopic(t *testing.T, broker, topic string) {
	t.Helper()

	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err, "dial broker")
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err, "resolve controller")

	controllerConn, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err, "dial controller")
	defer controllerConn.Close()

	require.NoError(t, controllerConn.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))
}

// TestSurveyPublishRoundTrip verifies that a published land survey arrives on
// the survey topic keyed by plot ID with its routing headers intact.
func TestSurveyPublishRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testSurveyTopic)

	cfg := &config.Config{
		KafkaBrokers:     []string{broker},
		KafkaSurveyTopic: testSurveyTopic,
	}

	attrs, err := domain.DeriveGeography(42.0308, -93.6319, entropy.Fixed(0.5), false)
	require.NoError(t, err)
	survey := domain.ComposeSurvey(42.0308, -93.6319, attrs, "corn")

	writer := kafkaadapter.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	require.NoError(t, writer.PublishSurvey(ctx, survey))

	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       testSurveyTopic,
		GroupID:     fmt.Sprintf("test-consumer-%d", time.Now().UnixNano()),
		StartOffset: kafkago.FirstOffset,
	})
	t.Cleanup(func() { _ = consumer.Close() })

	readCtx, readCancel := context.WithTimeout(ctx, 30*time.Second)
	defer readCancel()

	msg, err := consumer.ReadMessage(readCtx)
	require.NoError(t, err, "read from survey topic")

	assert.Equal(t, survey.ID, string(msg.Key))

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "Corn Production", headers["crop_id"])
	assert.Equal(t, string(domain.ZoneContinental), headers["climate_zone"])
	_, err = time.Parse(time.RFC3339, headers["surveyed_at"])
	assert.NoError(t, err, "surveyed_at should be valid RFC3339")

	var got domain.LandSurvey
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, survey.ID, got.ID)
	assert.Equal(t, survey.Score, got.Score)
	assert.Equal(t, domain.SoilLoam, got.Attributes.SoilType)
	assert.Equal(t, 618, got.Attributes.Rainfall)
}
