package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

// Config for New.
type Config struct {
	// Writer defaults to os.Stderr. Stdout is reserved for the MCP transport.
	Writer io.Writer
	// Level defaults to slog.LevelInfo.
	Level     slog.Leveler
	AddSource bool
	IsJSON    bool
	UseColor  bool
	// Extra handlers receive every record as well, e.g. a FluentHandler.
	Extra []slog.Handler
}

// New builds the process logger.
func New(cfg Config) *slog.Logger {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Level == nil {
		cfg.Level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		AddSource: cfg.AddSource,
		Level:     cfg.Level,
	}

	var handler slog.Handler
	switch {
	case cfg.IsJSON:
		handler = slog.NewJSONHandler(cfg.Writer, opts)
	case cfg.UseColor:
		handler = tint.NewHandler(cfg.Writer, &tint.Options{
			Level:      cfg.Level,
			AddSource:  cfg.AddSource,
			TimeFormat: "2006-01-02 15:04:05",
		})
	default:
		handler = slog.NewTextHandler(cfg.Writer, opts)
	}

	if len(cfg.Extra) > 0 {
		handler = NewMultiHandler(append([]slog.Handler{handler}, cfg.Extra...)...)
	}

	return slog.New(handler)
}

// ParseLevel maps "debug", "info", "warn" and "error" to a slog level, defaulting to info.
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
