// Package tracing wraps a simplified OpenTelemetry setup for the
// pipeline: one stdout exporter, no collector required.
package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

// Tracer wraps a tracer provider scoped to hookgate's own spans: one
// per Engine.Execute call. Individual rules get no spans of their own.
type Tracer struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
}

// New constructs a Tracer that writes spans to stdout. enabled=false
// returns a Tracer whose Start is a no-op, so callers never need a nil
// check.
func New(enabled bool) (*Tracer, error) {
	if !enabled {
		return &Tracer{}, nil
	}

	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("tracing: creating exporter: %w", err)
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName("hookgate")),
	)
	if err != nil {
		return nil, fmt.Errorf("tracing: building resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return &Tracer{provider: provider, tracer: provider.Tracer("hookgate")}, nil
}

// Start opens a span named spanName. When tracing is disabled, it
// returns ctx unchanged and a no-op span.
func (t *Tracer) Start(ctx context.Context, spanName string) (context.Context, trace.Span) {
	if t == nil || t.tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return t.tracer.Start(ctx, spanName)
}

// Shutdown flushes and releases the underlying provider.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil || t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
