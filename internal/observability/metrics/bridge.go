package metrics

import (
	"context"
	"fmt"
	"time"

	"ryft_bridge/internal/domain/entities"
	"ryft_bridge/internal/usecase/interfaces"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const MeterName = "ryft_bridge"

type BridgeMetrics struct {
	operationsTotal   metric.Int64Counter
	operationDuration metric.Float64Histogram
}

var _ interfaces.IBridgeMetrics = (*BridgeMetrics)(nil)

func NewBridgeMetrics(meter metric.Meter) (*BridgeMetrics, error) {
	m := &BridgeMetrics{}

	var err error

	m.operationsTotal, err = meter.Int64Counter(
		"bridge_operations_total",
		metric.WithDescription("Total number of bridge operations by final status"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create bridge_operations_total counter: %w", err)
	}

	m.operationDuration, err = meter.Float64Histogram(
		"bridge_operation_duration_seconds",
		metric.WithDescription("Time from call to resolved envelope"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("create bridge_operation_duration histogram: %w", err)
	}

	return m, nil
}

// RecordOperation counts every operation; only resolved ones feed the histogram.
func (m *BridgeMetrics) RecordOperation(ctx context.Context, op entities.Operation, status string, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("operation", string(op)),
		attribute.String("status", status),
	)
	m.operationsTotal.Add(ctx, 1, attrs)
	if elapsed > 0 {
		m.operationDuration.Record(ctx, elapsed.Seconds(), attrs)
	}
}
