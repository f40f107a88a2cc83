// Package logger provides a zap-based application logger that stamps every
// line with the service name and the request's trace id.
package logger

import (
	"context"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is the minimum level a Logger writes.
type Level = zapcore.Level

// Levels.
const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

// TraceIDFn extracts a trace id from a context.
type TraceIDFn func(ctx context.Context) string

// Logger writes structured JSON lines.
type Logger struct {
	z         *zap.SugaredLogger
	traceIDFn TraceIDFn
}

// New constructs a Logger writing to w at minLevel and above. traceIDFn may
// be nil.
func New(w io.Writer, minLevel Level, serviceName string, traceIDFn TraceIDFn) *Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), minLevel)
	z := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).With(zap.String("service", serviceName))
	return &Logger{z: z.Sugar(), traceIDFn: traceIDFn}
}

// ParseLevel parses debug, info, warn or error.
func ParseLevel(s string) (Level, error) {
	return zapcore.ParseLevel(s)
}

// Debug logs at debug level.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.z.Debugw(msg, l.fields(ctx, args)...)
}

// Info logs at info level.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.z.Infow(msg, l.fields(ctx, args)...)
}

// Warn logs at warn level.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.z.Warnw(msg, l.fields(ctx, args)...)
}

// Error logs at error level.
func (l *Logger) Error(ctx context.Context, msg string, args ...any) {
	l.z.Errorw(msg, l.fields(ctx, args)...)
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.z.Sync()
}

func (l *Logger) fields(ctx context.Context, args []any) []any {
	if l.traceIDFn == nil {
		return args
	}
	if id := l.traceIDFn(ctx); id != "" {
		return append([]any{"trace_id", id}, args...)
	}
	return args
}
