package logger

import (
	"context"
	"errors"
	"log/slog"
	"testing"
)

func TestScope(t *testing.T) {
	tests := []struct {
		name  string
		scope string
		want  string
	}{
		{"basic scope", "relay", "relay"},
		{"nested scope", "relay.mailgun", "relay.mailgun"},
		{"empty scope", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := Scope(tt.scope)
			if attr.Key != "scope" {
				t.Errorf("Scope() key = %q, want %q", attr.Key, "scope")
			}
			if attr.Value.String() != tt.want {
				t.Errorf("Scope() value = %q, want %q", attr.Value.String(), tt.want)
			}
		})
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"simple error", errors.New("something went wrong")},
		{"nil error", nil},
		{"wrapped error", errors.Join(errors.New("outer"), errors.New("inner"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := Error(tt.err)
			if attr.Key != "error" {
				t.Errorf("Error() key = %q, want %q", attr.Key, "error")
			}
			if attr.Value.Any() != tt.err {
				t.Errorf("Error() value = %v, want %v", attr.Value.Any(), tt.err)
			}
		})
	}
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level   string
		enabled slog.Level
		muted   *slog.Level
	}{
		{level: "", enabled: slog.LevelInfo, muted: ptr(slog.LevelDebug)},
		{level: "debug", enabled: slog.LevelDebug},
		{level: "DEBUG", enabled: slog.LevelDebug},
		{level: "dEbUg", enabled: slog.LevelDebug},
		{level: "info", enabled: slog.LevelInfo, muted: ptr(slog.LevelDebug)},
		{level: "warn", enabled: slog.LevelWarn, muted: ptr(slog.LevelInfo)},
		{level: "warning", enabled: slog.LevelWarn, muted: ptr(slog.LevelInfo)},
		{level: "error", enabled: slog.LevelError, muted: ptr(slog.LevelWarn)},
		{level: "invalid", enabled: slog.LevelInfo, muted: ptr(slog.LevelDebug)},
	}

	ctx := context.Background()
	for _, tt := range tests {
		t.Run("LOG_LEVEL="+tt.level, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.level)
			t.Setenv("GO_ENV", "")

			log := NewLogger()
			if log == nil {
				t.Fatal("NewLogger() returned nil")
			}
			if !log.Enabled(ctx, tt.enabled) {
				t.Errorf("NewLogger() should enable %v when LOG_LEVEL=%q", tt.enabled, tt.level)
			}
			if tt.muted != nil && log.Enabled(ctx, *tt.muted) {
				t.Errorf("NewLogger() should NOT enable %v when LOG_LEVEL=%q", *tt.muted, tt.level)
			}
		})
	}
}

func TestNewLogger_ProductionJSON(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("GO_ENV", "production")

	log := NewLogger()
	if _, ok := log.Handler().(*slog.JSONHandler); !ok {
		t.Errorf("NewLogger() handler = %T, want *slog.JSONHandler", log.Handler())
	}
	if !log.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("NewLogger() should have info level enabled in production")
	}
}

func ptr(l slog.Level) *slog.Level { return &l }
