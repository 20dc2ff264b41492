package trace

import (
	"io"
	"log/slog"
	"strings"

	"github.com/rs/zerolog"
)

// NewLogger builds a zerolog logger writing to w. Unknown or empty levels
// fall back to info.
func NewLogger(w io.Writer, cfg Config) zerolog.Logger {
	out := w
	switch cfg.Format {
	case FormatConsole, FormatText:
		out = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}

	ctx := zerolog.New(out).
		Level(parseLevel(cfg.Level)).
		With().
		Timestamp()
	if cfg.Label != "" {
		ctx = ctx.Str("component", cfg.Label)
	}
	return ctx.Logger()
}

// NewSlogLogger builds a log/slog logger writing to w with the same level
// and format rules as NewLogger.
func NewSlogLogger(w io.Writer, cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slogLevel(parseLevel(cfg.Level)),
	}

	var handler slog.Handler
	switch cfg.Format {
	case FormatConsole, FormatText:
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler)
	if cfg.Label != "" {
		logger = logger.With("component", cfg.Label)
	}
	return logger
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func slogLevel(lvl zerolog.Level) slog.Level {
	switch {
	case lvl <= zerolog.DebugLevel:
		return slog.LevelDebug
	case lvl == zerolog.InfoLevel:
		return slog.LevelInfo
	case lvl == zerolog.WarnLevel:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
