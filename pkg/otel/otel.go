// Package otel wires OpenTelemetry tracing and provides the span helpers the
// handlers use.
package otel

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"concerts/pkg/logger"
)

// Config configures tracing. With an empty Host no spans are exported, but
// trace ids are still generated for log correlation.
type Config struct {
	ServiceName string
	Host        string
	Probability float64
}

// InitTracing installs a global tracer provider and W3C propagator.
func InitTracing(log *logger.Logger, cfg Config) (*sdktrace.TracerProvider, func(context.Context) error, error) {
	ctx := context.Background()

	res := resource.NewWithAttributes("", attribute.String("service.name", cfg.ServiceName))
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.Probability))),
		sdktrace.WithResource(res),
	}

	if cfg.Host != "" {
		exporter, err := otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(cfg.Host),
			otlptracegrpc.WithInsecure(),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("create otlp exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
		log.Info(ctx, "OTEL tracer", "service", cfg.ServiceName, "host", cfg.Host, "probability", cfg.Probability)
	} else {
		log.Info(ctx, "OTEL tracer", "service", cfg.ServiceName, "exporter", "none")
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp, tp.Shutdown, nil
}

type ctxKey int

const (
	tracerKey ctxKey = iota + 1
	traceIDKey
)

var zeroTraceID trace.TraceID

// InjectTracing stores the tracer and the current trace id in ctx. When ctx
// carries no sampled span a random id is used so logs still correlate.
func InjectTracing(ctx context.Context, tracer trace.Tracer) context.Context {
	ctx = context.WithValue(ctx, tracerKey, tracer)

	traceID := trace.SpanFromContext(ctx).SpanContext().TraceID()
	id := traceID.String()
	if traceID == zeroTraceID {
		id = uuid.NewString()
	}
	return context.WithValue(ctx, traceIDKey, id)
}

// AddSpan starts a child span using the tracer stored by InjectTracing. The
// caller must End the span.
func AddSpan(ctx context.Context, spanName string, keyValues ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer, ok := ctx.Value(tracerKey).(trace.Tracer)
	if !ok || tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	ctx, span := tracer.Start(ctx, spanName)
	span.SetAttributes(keyValues...)
	return ctx, span
}

// GetTraceID returns the trace id stored by InjectTracing, or "".
func GetTraceID(ctx context.Context) string {
	id, _ := ctx.Value(traceIDKey).(string)
	return id
}
