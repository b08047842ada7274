package treemap

import (
	"log/slog"
	"os"

	"github.com/rs/zerolog"
)

// Logger defines basic logger that the tree expects.
// log/slog.Logger implements this interface.
type Logger interface {
	// Info takes a message and a set of key/value pairs and logs with level INFO.
	// The key of the tuple must be a string.
	Info(msg string, keyVals ...any)

	// Warn takes a message and a set of key/value pairs and logs with level WARN.
	// The key of the tuple must be a string.
	Warn(msg string, keyVals ...any)

	// Error takes a message and a set of key/value pairs and logs with level ERR.
	// The key of the tuple must be a string.
	Error(msg string, keyVals ...any)

	// Debug takes a message and a set of key/value pairs and logs with level DEBUG.
	// The key of the tuple must be a string.
	Debug(msg string, keyVals ...any)
}

// NewNopLogger returns a new logger that does nothing.
func NewNopLogger() Logger {
	return &noopLogger{}
}

type noopLogger struct{}

func (l *noopLogger) Info(string, ...any)  {}
func (l *noopLogger) Warn(string, ...any)  {}
func (l *noopLogger) Error(string, ...any) {}
func (l *noopLogger) Debug(string, ...any) {}

func NewDebugLogger() Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// NewZeroLogger adapts a zerolog.Logger to Logger. Odd trailing keyVals are
// logged under the key "EXTRA".
func NewZeroLogger(zl zerolog.Logger) Logger {
	return &zeroLogger{zl: zl}
}

type zeroLogger struct {
	zl zerolog.Logger
}

func (l *zeroLogger) Info(msg string, keyVals ...any) {
	l.zl.Info().Fields(fields(keyVals)).Msg(msg)
}

func (l *zeroLogger) Warn(msg string, keyVals ...any) {
	l.zl.Warn().Fields(fields(keyVals)).Msg(msg)
}

func (l *zeroLogger) Error(msg string, keyVals ...any) {
	l.zl.Error().Fields(fields(keyVals)).Msg(msg)
}

func (l *zeroLogger) Debug(msg string, keyVals ...any) {
	l.zl.Debug().Fields(fields(keyVals)).Msg(msg)
}

func fields(keyVals []any) map[string]any {
	m := make(map[string]any, len(keyVals)/2+1)
	for i := 0; i < len(keyVals); i += 2 {
		if i+1 == len(keyVals) {
			m["EXTRA"] = keyVals[i]
			break
		}
		k, ok := keyVals[i].(string)
		if !ok {
			k = "BADKEY"
		}
		m[k] = keyVals[i+1]
	}
	return m
}
