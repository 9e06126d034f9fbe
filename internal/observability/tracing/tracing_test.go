package tracing

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestInit_Disabled(t *testing.T) {
	shutdown, err := Init(context.Background(), Config{Enabled: false}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := otel.GetTracerProvider().(noop.TracerProvider); !ok {
		t.Fatalf("expected noop tracer provider, got %T", otel.GetTracerProvider())
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected shutdown error: %v", err)
	}
}

func TestExporterOptions(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"collector:4318", 2},
		{"http://collector:4318/v1/traces", 3},
		{"https://collector.example.com/v1/traces", 2},
		{"https://collector.example.com", 1},
	}
	for _, tt := range tests {
		if got := len(exporterOptions(tt.raw)); got != tt.want {
			t.Fatalf("exporterOptions(%q) returned %d options, want %d", tt.raw, got, tt.want)
		}
	}
}
