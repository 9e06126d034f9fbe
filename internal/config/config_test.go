package config

import (
	"testing"
	"time"

	"ryft_bridge/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"SERVICE_NAME", "LOG_LEVEL", "HTTP_LISTEN_ADDR", "BRIDGE_PLATFORM",
	"RYFT_API_BASE_URL", "RYFT_HTTP_TIMEOUT_SECONDS", "PAYMENT_GATEWAY_MOCK", "RYFT_MOCK",
	"OTEL_ENABLED", "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "RESULT_JOURNAL_ENABLED",
	"PAYMENT_RESULTS_TABLE", "AWS_REGION", "DYNAMODB_ENDPOINT", "AWS_ACCESS_KEY_ID",
	"AWS_SECRET_ACCESS_KEY", "KAFKA_BROKERS", "KAFKA_RESULTS_TOPIC",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "ryft-payment-bridge", cfg.ServiceName)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, entities.PlatformAndroid, cfg.Bridge.Platform)
	assert.Equal(t, 30*time.Second, cfg.Ryft.Timeout)
	assert.False(t, cfg.Ryft.Mock)
	assert.False(t, cfg.Tracing.Enabled)
	assert.False(t, cfg.Journal.Enabled)
	assert.Equal(t, "payment_results", cfg.Journal.Table)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, "payment-results.v1", cfg.Kafka.ResultsTopic)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BRIDGE_PLATFORM", "iOS")
	t.Setenv("RYFT_HTTP_TIMEOUT_SECONDS", "5")
	t.Setenv("RYFT_MOCK", "mock")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("RESULT_JOURNAL_ENABLED", "1")
	t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, entities.PlatformIOS, cfg.Bridge.Platform)
	assert.Equal(t, 5*time.Second, cfg.Ryft.Timeout)
	assert.True(t, cfg.Ryft.Mock)
	assert.True(t, cfg.Tracing.Enabled)
	assert.True(t, cfg.Journal.Enabled)
	assert.Equal(t, "http://dynamodb:8000", cfg.Journal.DynamoDB.Endpoint)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}

func TestLoad_MockFlagPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("PAYMENT_GATEWAY_MOCK", "off")
	t.Setenv("RYFT_MOCK", "yes")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Ryft.Mock)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"platform", "BRIDGE_PLATFORM", "windows"},
		{"timeout", "RYFT_HTTP_TIMEOUT_SECONDS", "soon"},
		{"negative timeout", "RYFT_HTTP_TIMEOUT_SECONDS", "-1"},
		{"mock", "PAYMENT_GATEWAY_MOCK", "maybe"},
		{"otel", "OTEL_ENABLED", "sure"},
		{"journal", "RESULT_JOURNAL_ENABLED", "2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
