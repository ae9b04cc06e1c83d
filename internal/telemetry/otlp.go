// Package telemetry exports breakpoint activity as OpenTelemetry spans.
// Export is enabled by setting OTEL_EXPORTER_OTLP_ENDPOINT; otherwise every
// method is a no-op on a nil *Tracer.
package telemetry

import (
	"context"
	"os"

	"termbreak/internal/breakpoint"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const instrumentationName = "termbreak/breakpoint"

// Tracer records breakpoint transitions and config reloads.
type Tracer struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// New creates a Tracer exporting over OTLP/HTTP if OTEL_EXPORTER_OTLP_ENDPOINT
// is set. Returns nil (disabled) if the endpoint is not configured.
func New(ctx context.Context) (*Tracer, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}
	return NewWithProvider(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(serviceResource()),
	)), nil
}

// NewWithProvider wraps an existing provider, e.g. one with an in-memory exporter.
func NewWithProvider(provider *sdktrace.TracerProvider) *Tracer {
	return &Tracer{
		provider: provider,
		tracer:   provider.Tracer(instrumentationName),
	}
}

func serviceResource() *resource.Resource {
	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "termbreak"
	}
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
}

// RecordTransition records a change of the resolved breakpoint.
func (t *Tracer) RecordTransition(ctx context.Context, from, to string, r *breakpoint.Resolver) {
	if t == nil {
		return
	}
	_, span := t.tracer.Start(ctx, "breakpoint.change")
	span.SetAttributes(
		attribute.String("termbreak.breakpoint.from", from),
		attribute.String("termbreak.breakpoint.to", to),
		attribute.Int("termbreak.viewport.width", r.Width()),
		attribute.Bool("termbreak.viewport.ready", r.Ready()),
	)
	span.End()
}

// RecordReload records a config file reload. A non-nil err marks the span failed.
func (t *Tracer) RecordReload(ctx context.Context, path string, cfg breakpoint.Config, err error) {
	if t == nil {
		return
	}
	_, span := t.tracer.Start(ctx, "breakpoint.config.reload")
	span.SetAttributes(attribute.String("termbreak.config.path", path))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(
			attribute.StringSlice("termbreak.breakpoint.labels", breakpoint.BuildTable(cfg.Breakpoints).Labels()),
			attribute.String("termbreak.breakpoint.default", cfg.DefaultBreakpoint),
			attribute.Bool("termbreak.breakpoint.guard_ssr", cfg.GuardSSR),
		)
	}
	span.End()
}

// Shutdown flushes and closes the exporter.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
