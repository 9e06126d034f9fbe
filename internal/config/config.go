package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"ryft_bridge/internal/domain/entities"
	"ryft_bridge/internal/infrastructure/database"
)

// Config aggregates runtime configuration grouped by concern.
type Config struct {
	ServiceName string
	LogLevel    string
	HTTP        HTTPConfig
	Bridge      BridgeConfig
	Ryft        RyftConfig
	Tracing     TracingConfig
	Journal     JournalConfig
	Kafka       KafkaConfig
}

type HTTPConfig struct {
	Addr string
}

type BridgeConfig struct {
	Platform entities.Platform
}

type RyftConfig struct {
	// BaseURL overrides the sandbox/live root derived from the public key.
	BaseURL string
	Timeout time.Duration
	Mock    bool
}

type TracingConfig struct {
	Enabled  bool
	Endpoint string
}

type JournalConfig struct {
	Enabled  bool
	Table    string
	DynamoDB database.DynamoDBConfig
}

type KafkaConfig struct {
	// Brokers is empty when result events are disabled.
	Brokers      []string
	ResultsTopic string
}

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		ServiceName: getEnv("SERVICE_NAME", "ryft-payment-bridge"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		HTTP: HTTPConfig{
			Addr: getEnv("HTTP_LISTEN_ADDR", ":8080"),
		},
		Ryft: RyftConfig{
			BaseURL: getEnv("RYFT_API_BASE_URL", ""),
		},
		Tracing: TracingConfig{
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "http://localhost:4318/v1/traces"),
		},
		Journal: JournalConfig{
			Table: getEnv("PAYMENT_RESULTS_TABLE", "payment_results"),
			DynamoDB: database.DynamoDBConfig{
				Region:          getEnv("AWS_REGION", "us-east-1"),
				Endpoint:        getEnv("DYNAMODB_ENDPOINT", ""),
				AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
				SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			},
		},
		Kafka: KafkaConfig{
			Brokers:      splitAndTrim(getEnv("KAFKA_BROKERS", "")),
			ResultsTopic: getEnv("KAFKA_RESULTS_TOPIC", "payment-results.v1"),
		},
	}

	platform, err := entities.ParsePlatform(getEnv("BRIDGE_PLATFORM", string(entities.PlatformAndroid)))
	if err != nil {
		return Config{}, fmt.Errorf("parse BRIDGE_PLATFORM: %w", err)
	}
	cfg.Bridge.Platform = platform

	timeoutStr := getEnv("RYFT_HTTP_TIMEOUT_SECONDS", "30")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil || timeout <= 0 {
		return Config{}, fmt.Errorf("parse RYFT_HTTP_TIMEOUT_SECONDS: invalid value %q", timeoutStr)
	}
	cfg.Ryft.Timeout = time.Duration(timeout) * time.Second

	mock, err := mockFlag()
	if err != nil {
		return Config{}, err
	}
	cfg.Ryft.Mock = mock

	if cfg.Tracing.Enabled, err = parseBool("OTEL_ENABLED", false); err != nil {
		return Config{}, err
	}
	if cfg.Journal.Enabled, err = parseBool("RESULT_JOURNAL_ENABLED", false); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// mockFlag reads PAYMENT_GATEWAY_MOCK, falling back to RYFT_MOCK. Besides the
// usual booleans it accepts "mock".
func mockFlag() (bool, error) {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "RYFT_MOCK"} {
		raw := strings.ToLower(getEnv(key, ""))
		if raw == "" {
			continue
		}
		switch raw {
		case "1", "true", "yes", "on", "mock":
			return true, nil
		case "0", "false", "no", "off":
			return false, nil
		}
		return false, fmt.Errorf("parse %s: invalid value %q", key, raw)
	}
	return false, nil
}

func parseBool(key string, fallback bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
