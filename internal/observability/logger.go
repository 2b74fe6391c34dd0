package observability

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	envLogLevel  = "TYPHOONVIZ_LOG_LEVEL"
	envLogFormat = "TYPHOONVIZ_LOG_FORMAT"
)

// LogConfig selects the slog handler and level.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// FromEnv overrides the config with TYPHOONVIZ_LOG_LEVEL and
// TYPHOONVIZ_LOG_FORMAT when they are set.
func (c LogConfig) FromEnv() LogConfig {
	if v, ok := os.LookupEnv(envLogLevel); ok && v != "" {
		c.Level = v
	}
	if v, ok := os.LookupEnv(envLogFormat); ok && v != "" {
		c.Format = v
	}
	return c
}

// NewLogger builds a JSON or text logger writing to w (stderr when nil).
func NewLogger(cfg LogConfig, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// ParseLevel maps debug|info|warn|error onto slog levels. Unknown values are info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard is a logger that drops everything, for tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
