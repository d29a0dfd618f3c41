package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type ctxKey struct{}

func New(level string) zerolog.Logger {
	return NewWithWriter(os.Stdout, level)
}

func NewWithWriter(w io.Writer, level string) zerolog.Logger {
	var lvl zerolog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = zerolog.DebugLevel
	case "warn":
		lvl = zerolog.WarnLevel
	case "error":
		lvl = zerolog.ErrorLevel
	default:
		lvl = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

func IntoContext(ctx context.Context, l zerolog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext falls back to the global zerolog logger.
func FromContext(ctx context.Context) zerolog.Logger {
	if v := ctx.Value(ctxKey{}); v != nil {
		if l, ok := v.(zerolog.Logger); ok {
			return l
		}
	}
	return log.Logger
}

// With returns the context logger enriched with a component name.
func With(ctx context.Context, key, value string) zerolog.Logger {
	return FromContext(ctx).With().Str(key, value).Logger()
}
