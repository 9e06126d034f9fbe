package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc", "****"},
		{"pk_sandbox_123456", "****3456"},
		{"  cs_secret_9876  ", "****9876"},
	}
	for _, tt := range tests {
		if got := MaskSecret(tt.in); got != tt.want {
			t.Fatalf("MaskSecret(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	if ParseLevel("DEBUG") != zapcore.DebugLevel {
		t.Fatalf("expected debug level")
	}
	if ParseLevel("nonsense") != zapcore.InfoLevel {
		t.Fatalf("expected fallback to info")
	}
}

func TestSecretField(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	zap.New(core).Info("initialized", Secret("public_key", "pk_live_abcdef"))

	fields := logs.All()[0].ContextMap()
	if fields["public_key"] != "****cdef" {
		t.Fatalf("expected masked key, got %v", fields["public_key"])
	}
}

func TestNew(t *testing.T) {
	log, err := New("warn")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if log.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("info should be disabled at warn level")
	}
}
