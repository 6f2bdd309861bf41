package logger

import (
	"io"
	"log/slog"
	"os"

	"hospital-portal/internal/config"
)

// New builds the root logger. Local runs get readable text output with debug
// events, every other environment gets JSON at info level.
func New(cfg *config.Config) *slog.Logger {
	return newWithWriter(cfg, os.Stdout)
}

func newWithWriter(cfg *config.Config, w io.Writer) *slog.Logger {
	var h slog.Handler
	if cfg.IsLocal() {
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return slog.New(h).With("version", cfg.App.Version, "env", string(cfg.App.Env))
}

// WithModule tags every record with the component that emitted it.
func WithModule(l *slog.Logger, module string) *slog.Logger {
	return l.With("module", module)
}

// Discard is used by tests that do not care about log output.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
