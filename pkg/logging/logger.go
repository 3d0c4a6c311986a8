// Package logging configures zerolog for depaginator consumers and hands out
// component loggers.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Level is a textual log level as found in configuration and environment.
type Level string

const (
	// LevelDebug includes every page fetch.
	LevelDebug Level = "debug"

	// LevelInfo is the default.
	LevelInfo Level = "info"

	// LevelWarn includes unpaginated fetcher fallbacks.
	LevelWarn Level = "warn"

	// LevelError logs error messages only.
	LevelError Level = "error"
)

// Config holds logger configuration.
type Config struct {
	// Level is the minimum log level to output.
	Level Level

	// Pretty enables human-readable console output instead of JSON.
	Pretty bool

	// Output defaults to os.Stderr when nil.
	Output io.Writer
}

// DefaultConfig returns JSON logging at info level on stderr.
func DefaultConfig() Config {
	return Config{
		Level:  LevelInfo,
		Pretty: false,
		Output: os.Stderr,
	}
}

// Setup configures the global zerolog logger and returns it.
func Setup(cfg Config) zerolog.Logger {
	zerolog.SetGlobalLevel(ParseLevel(string(cfg.Level)))

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out}
	}

	logger := zerolog.New(out).With().Timestamp().Logger()
	log.Logger = logger

	return logger
}

// ParseLevel converts a level name to a zerolog.Level.
// Unknown names fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// NewLogger derives a logger from the global one, tagged with component.
func NewLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// Nop returns a logger that discards everything.
func Nop() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

// Level guidelines for this module:
//
// Debug: every page fetch (limit, offset, results, duration), failed fetches
// before they are returned to the caller.
//
// Warn: a fetcher answered with a bare list instead of a page envelope. Logged
// once per sequence, tagged with the fetcher name.
//
// Fields:
//   - component: always "pagination" for sequence diagnostics
//   - fetcher: name of the fetcher (Config.Name, Name() or Go symbol)
//   - kind: "first" or "next"
//   - limit, offset: parameters passed to the fetcher
//   - results: number of elements in the fetched page
//   - count: total element count reported by the first page
