package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != LevelInfo {
		t.Errorf("Expected default level to be info, got %s", cfg.Level)
	}
	if cfg.Pretty {
		t.Error("Expected default pretty to be false")
	}
	if cfg.Output == nil {
		t.Error("Expected default output to be set")
	}
}

func TestSetup(t *testing.T) {
	tests := []struct {
		name  string
		level Level
		emit  func(zerolog.Logger, string)
	}{
		{"debug", LevelDebug, func(l zerolog.Logger, m string) { l.Debug().Msg(m) }},
		{"info", LevelInfo, func(l zerolog.Logger, m string) { l.Info().Msg(m) }},
		{"warn", LevelWarn, func(l zerolog.Logger, m string) { l.Warn().Msg(m) }},
		{"error", LevelError, func(l zerolog.Logger, m string) { l.Error().Msg(m) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := Setup(Config{Level: tt.level, Output: buf})

			msg := "message at " + tt.name
			tt.emit(logger, msg)

			if !strings.Contains(buf.String(), msg) {
				t.Errorf("Expected output to contain %q, got %q", msg, buf.String())
			}
		})
	}
}

func TestSetup_Pretty(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := Setup(Config{Level: LevelInfo, Pretty: true, Output: buf})

	logger.Info().Msg("pretty message")

	out := buf.String()
	if !strings.Contains(out, "pretty message") {
		t.Errorf("Expected output to contain message, got %q", out)
	}
	if strings.HasPrefix(out, "{") {
		t.Errorf("Expected console output, got JSON %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"invalid", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	Setup(Config{Level: LevelInfo, Output: buf})

	logger := NewLogger("pagination")
	logger.Info().Msg("component message")

	out := buf.String()
	if !strings.Contains(out, `"component":"pagination"`) {
		t.Errorf("Expected component field, got %q", out)
	}
	if !strings.Contains(out, "component message") {
		t.Errorf("Expected message, got %q", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	Setup(Config{Level: LevelWarn, Output: buf})

	logger := NewLogger("test")
	logger.Debug().Msg("debug message")
	logger.Info().Msg("info message")
	logger.Warn().Msg("warn message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("Expected messages below warn to be filtered, got %q", out)
	}
	if !strings.Contains(out, "warn message") {
		t.Error("Expected warn message to be included")
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	if l == nil {
		t.Fatal("Nop() returned nil")
	}
	// Must not panic.
	l.Warn().Msg("discarded")
}
