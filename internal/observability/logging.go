// Package observability provides the logger, metrics registry, and health
// handlers shared by the serving commands.
package observability

import (
	"log/slog"
	"os"
	"strings"
)

// LogConfig selects the handler format and level for the process logger.
type LogConfig struct {
	Level string
	JSON  bool
}

// NewLogger builds a slog.Logger writing to stderr. Unknown level strings
// fall back to info.
func NewLogger(cfg LogConfig) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, handlerOpts)
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
