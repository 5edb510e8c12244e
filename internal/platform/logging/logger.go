// Package logging wraps zap behind a small structured logger with variadic
// key/value pairs and context-aware variants that stamp trace and span IDs
// onto every record inside an active span.
package logging

import (
	"context"
	"os"
	"sync/atomic"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level aliases zapcore.Level so callers configure verbosity without
// importing zap themselves.
type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

// ParseLevel maps a config string to a Level, defaulting to info.
func ParseLevel(s string) Level {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return LevelInfo
	}
	return level
}

// Logger emits structured JSON records.
type Logger struct {
	base *zap.Logger
}

// NewJSON builds a production JSON logger writing to stderr.
func NewJSON(level Level) *Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		level,
	)
	return &Logger{base: zap.New(core)}
}

// NewNop returns a logger that discards everything. Useful in tests.
func NewNop() *Logger {
	return &Logger{base: zap.NewNop()}
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(NewJSON(LevelInfo))
}

// Default returns the process-wide logger.
func Default() *Logger { return defaultLogger.Load() }

// SetDefault replaces the process-wide logger.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger.Store(l)
	}
}

// With returns a child logger carrying the given key/value pairs.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{base: l.base.With(fields(args)...)}
}

// Sync flushes buffered records. Safe to call on shutdown paths.
func (l *Logger) Sync() {
	_ = l.base.Sync()
}

func (l *Logger) Debug(msg string, args ...any) { l.base.Debug(msg, fields(args)...) }
func (l *Logger) Info(msg string, args ...any)  { l.base.Info(msg, fields(args)...) }
func (l *Logger) Warn(msg string, args ...any)  { l.base.Warn(msg, fields(args)...) }
func (l *Logger) Error(msg string, args ...any) { l.base.Error(msg, fields(args)...) }

func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.base.Debug(msg, append(traceFields(ctx), fields(args)...)...)
}

func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.base.Info(msg, append(traceFields(ctx), fields(args)...)...)
}

func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.base.Warn(msg, append(traceFields(ctx), fields(args)...)...)
}

func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.base.Error(msg, append(traceFields(ctx), fields(args)...)...)
}

func fields(args []any) []zap.Field {
	out := make([]zap.Field, 0, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = "!BADKEY"
		}
		out = append(out, zap.Any(key, args[i+1]))
	}
	return out
}

func traceFields(ctx context.Context) []zap.Field {
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return nil
	}
	return []zap.Field{
		zap.String("trace_id", spanCtx.TraceID().String()),
		zap.String("span_id", spanCtx.SpanID().String()),
	}
}
