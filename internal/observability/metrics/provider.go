package metrics

import (
	"context"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.uber.org/zap"
)

type ProviderConfig struct {
	Enabled     bool
	ServiceName string
	// Endpoint is the collector the traces go to. Only its host and scheme
	// are used; metrics are posted to the default /v1/metrics path.
	Endpoint string
	// Reader overrides the periodic OTLP reader.
	Reader sdkmetric.Reader
}

// ShutdownFunc flushes and stops the meter provider.
type ShutdownFunc func(context.Context) error

// InitProvider installs the global meter provider. When disabled a noop
// provider is installed so instruments cost nothing.
func InitProvider(ctx context.Context, cfg ProviderConfig, log *zap.Logger) (ShutdownFunc, error) {
	if !cfg.Enabled {
		otel.SetMeterProvider(noop.NewMeterProvider())
		return func(context.Context) error { return nil }, nil
	}

	reader := cfg.Reader
	if reader == nil {
		exporter, err := otlpmetrichttp.New(ctx, exporterOptions(cfg.Endpoint)...)
		if err != nil {
			return nil, err
		}
		reader = sdkmetric.NewPeriodicReader(exporter)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", cfg.ServiceName),
		),
	)
	if err != nil {
		return nil, err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(reader),
	)
	otel.SetMeterProvider(mp)

	if log != nil {
		log.Info("metrics initialized", zap.String("endpoint", cfg.Endpoint), zap.String("service", cfg.ServiceName))
	}
	return mp.Shutdown, nil
}

func exporterOptions(raw string) []otlpmetrichttp.Option {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(raw), otlpmetrichttp.WithInsecure()}
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return nil
	}
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(u.Host)}
	if u.Scheme == "http" {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	return opts
}
