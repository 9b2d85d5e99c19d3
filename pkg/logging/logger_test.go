package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse log JSON %q: %v", buf.String(), err)
	}
	return entry
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger()
	if logger == nil || logger.Logger == nil {
		t.Fatal("NewLogger() returned an unusable logger")
	}
	if Discard().Logger == nil {
		t.Fatal("Discard() returned an unusable logger")
	}
}

func TestLogLevelFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected slog.Level
	}{
		{"debug level", "DEBUG", slog.LevelDebug},
		{"info level", "INFO", slog.LevelInfo},
		{"warn level", "WARN", slog.LevelWarn},
		{"warning level", "WARNING", slog.LevelWarn},
		{"error level", "ERROR", slog.LevelError},
		{"lowercase debug", "debug", slog.LevelDebug},
		{"invalid level", "LOUD", slog.LevelInfo},
		{"empty value", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(LevelEnv, tt.envValue)
			if level := getLogLevelFromEnv(); level != tt.expected {
				t.Errorf("getLogLevelFromEnv() = %v, want %v", level, tt.expected)
			}
		})
	}
}

func TestCorrelationID(t *testing.T) {
	t.Run("generated ids are distinct uuids", func(t *testing.T) {
		id1 := GenerateCorrelationID()
		id2 := GenerateCorrelationID()

		if id1 == id2 {
			t.Error("GenerateCorrelationID() returned duplicate IDs")
		}
		if _, err := uuid.Parse(id1); err != nil {
			t.Errorf("GenerateCorrelationID() is not a UUID: %v", err)
		}
	})

	t.Run("explicit id round trips", func(t *testing.T) {
		ctx := WithCorrelationID(context.Background(), "shot-1")
		if got := GetCorrelationID(ctx); got != "shot-1" {
			t.Errorf("GetCorrelationID() = %q, want %q", got, "shot-1")
		}
	})

	t.Run("missing id is empty", func(t *testing.T) {
		if got := GetCorrelationID(context.Background()); got != "" {
			t.Errorf("GetCorrelationID() = %q, want empty string", got)
		}
	})

	t.Run("empty id is generated", func(t *testing.T) {
		ctx := WithCorrelationID(context.Background(), "")
		if _, err := uuid.Parse(GetCorrelationID(ctx)); err != nil {
			t.Errorf("auto-generated correlation ID is not a UUID: %v", err)
		}
	})
}

func TestSanitizeAttributes(t *testing.T) {
	tests := []struct {
		name     string
		attr     slog.Attr
		expected string
	}{
		{"password field", slog.String("password", "secret123"), "[REDACTED]"},
		{"token field", slog.String("auth_token", "bearer-token"), "[REDACTED]"},
		{"case insensitive", slog.String("API_SECRET", "s"), "[REDACTED]"},
		{"normal field", slog.String("preset", "standard"), "standard"},
		{"finite float", slog.Float64("speed", 20), "20"},
		{"positive infinity", slog.Float64("speed", math.Inf(1)), "+Inf"},
		{"nan", slog.Float64("angle", math.NaN()), "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sanitizeAttributes(nil, tt.attr)
			if result.Value.String() != tt.expected {
				t.Errorf("sanitizeAttributes() = %q, want %q", result.Value.String(), tt.expected)
			}
		})
	}
}

func TestLoggerMethods(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, slog.LevelDebug)
	ctx := WithCorrelationID(context.Background(), "test-id-123")

	tests := []struct {
		name  string
		log   func()
		level string
		extra map[string]interface{}
	}{
		{
			name:  "info",
			log:   func() { logger.Info(ctx, "projectile fired", "speed", 20) },
			level: "INFO",
			extra: map[string]interface{}{"speed": float64(20)},
		},
		{
			name:  "warn",
			log:   func() { logger.Warn(ctx, "unknown gravity preset", "preset", "jupiter") },
			level: "WARN",
			extra: map[string]interface{}{"preset": "jupiter"},
		},
		{
			name:  "error",
			log:   func() { logger.Error(ctx, "config load failed", errors.New("boom")) },
			level: "ERROR",
			extra: map[string]interface{}{"error": "boom"},
		},
		{
			name:  "debug",
			log:   func() { logger.Debug(ctx, "frame", "tick", 3) },
			level: "DEBUG",
			extra: map[string]interface{}{"tick": float64(3)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.log()
			entry := decodeEntry(t, &buf)

			if entry["level"] != tt.level {
				t.Errorf("level = %v, want %v", entry["level"], tt.level)
			}
			if entry["correlation_id"] != "test-id-123" {
				t.Errorf("correlation_id = %v, want test-id-123", entry["correlation_id"])
			}
			for k, v := range tt.extra {
				if entry[k] != v {
					t.Errorf("%s = %v, want %v", k, entry[k], v)
				}
			}
		})
	}
}

func TestLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, slog.LevelInfo).With("component", "engine")

	logger.Info(context.Background(), "scene reset")
	entry := decodeEntry(t, &buf)

	if entry["component"] != "engine" {
		t.Errorf("component = %v, want engine", entry["component"])
	}
	if _, ok := entry["correlation_id"]; ok {
		t.Error("Log should not contain correlation_id when none is set in context")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, slog.LevelWarn)

	logger.Info(context.Background(), "dropped")
	if buf.Len() != 0 {
		t.Errorf("info record written at warn level: %s", buf.String())
	}
	logger.Warn(context.Background(), "kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Errorf("warn record missing: %s", buf.String())
	}
}

func TestWrapError(t *testing.T) {
	t.Run("wrap nil error", func(t *testing.T) {
		if result := WrapError(nil, "context"); result != nil {
			t.Errorf("WrapError(nil) should return nil, got %v", result)
		}
	})

	t.Run("wrap error with formatted context", func(t *testing.T) {
		originalErr := errors.New("original error")
		wrapped := WrapError(originalErr, "loading %s", "scene.yaml")

		if wrapped.Error() != "loading scene.yaml: original error" {
			t.Errorf("WrapError() = %q", wrapped.Error())
		}
		if !errors.Is(wrapped, originalErr) {
			t.Error("WrapError() should preserve original error")
		}
	})
}
