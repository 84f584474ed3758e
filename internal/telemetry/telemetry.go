// Package telemetry sets up OTLP trace export for alert lifecycle spans.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"uikit/internal/config"
)

// TracerName is the instrumentation scope used by the alert store.
const TracerName = "uikit/alert"

// Provider owns the SDK tracer provider. A nil *Provider is valid and hands
// out no-op tracers.
type Provider struct {
	provider *sdktrace.TracerProvider
}

// New builds a Provider exporting over OTLP/HTTP to cfg.Endpoint.
// Returns nil when no endpoint is configured.
func New(ctx context.Context, cfg config.TelemetryConfig) (*Provider, error) {
	if cfg.Endpoint == "" {
		return nil, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "uikit"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return NewWithExporter(exporter, res), nil
}

// NewWithExporter wraps an arbitrary span exporter, batching spans.
func NewWithExporter(exporter sdktrace.SpanExporter, res *resource.Resource) *Provider {
	opts := []sdktrace.TracerProviderOption{sdktrace.WithBatcher(exporter)}
	if res != nil {
		opts = append(opts, sdktrace.WithResource(res))
	}
	return &Provider{provider: sdktrace.NewTracerProvider(opts...)}
}

// Tracer returns the alert tracer, or a no-op tracer when p is nil.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil {
		return noop.NewTracerProvider().Tracer(TracerName)
	}
	return p.provider.Tracer(TracerName)
}

// ForceFlush exports every span ended so far.
func (p *Provider) ForceFlush(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.provider.ForceFlush(ctx)
}

// Shutdown flushes pending spans and stops the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
