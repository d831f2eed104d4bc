package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fpvlvr/esclavizador/internal/config"
)

// NewLogger builds the process logger from cfg, writing to stderr, and
// installs it as the slog default so library code logging through slog
// shares its handler.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

// newLogger returns a JSON logger for format "json" and a text logger with
// source locations otherwise. Every record carries the application version.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	text := !strings.EqualFold(cfg.Format, "json")
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level), AddSource: text}

	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if text {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With(slog.String("app", "esclavizador"), slog.String("version", Version))
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
