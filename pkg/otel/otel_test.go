package otel

import (
	"context"
	"io"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"concerts/pkg/logger"
)

func TestInitTracingWithoutHost(t *testing.T) {
	log := logger.New(io.Discard, logger.LevelInfo, "concerts", nil)
	tp, shutdown, err := InitTracing(log, Config{ServiceName: "concerts", Probability: 1})
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	defer shutdown(context.Background())

	ctx, span := tp.Tracer("test").Start(context.Background(), "root")
	defer span.End()
	ctx = InjectTracing(ctx, tp.Tracer("test"))
	if got, want := GetTraceID(ctx), span.SpanContext().TraceID().String(); got != want {
		t.Fatalf("expected trace id %s, got %s", want, got)
	}
}

func TestInjectTracingWithoutSpan(t *testing.T) {
	ctx := InjectTracing(context.Background(), sdktrace.NewTracerProvider().Tracer("test"))
	if GetTraceID(ctx) == "" {
		t.Fatal("expected a fallback trace id")
	}
	if GetTraceID(context.Background()) != "" {
		t.Fatal("expected empty trace id without injection")
	}
}

func TestAddSpan(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))

	ctx := InjectTracing(context.Background(), tp.Tracer("test"))
	_, span := AddSpan(ctx, "getConcert", attribute.Int64("concert.id", 7))
	span.End()

	ended := rec.Ended()
	if len(ended) != 1 || ended[0].Name() != "getConcert" {
		t.Fatalf("unexpected spans %v", ended)
	}

	// Without an injected tracer AddSpan is a no-op.
	_, noop := AddSpan(context.Background(), "nothing")
	noop.End()
	if len(rec.Ended()) != 1 {
		t.Fatal("expected no additional span")
	}
}
