// Package otel configures opt-in OpenTelemetry tracing for commands.
package otel

import (
	"context"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// exportTarget reads the OTLP endpoint from the environment. Tracing stays
// off when FLUX_OTEL_ENDPOINT is unset or FLUX_OTEL_ENABLED is "false".
func exportTarget() (string, bool) {
	if strings.EqualFold(os.Getenv("FLUX_OTEL_ENABLED"), "false") {
		return "", false
	}
	endpoint := os.Getenv("FLUX_OTEL_ENDPOINT")
	return endpoint, endpoint != ""
}

// Setup installs a global tracer provider for the given service when the
// environment opts in, otherwise it leaves tracing disabled. Either way the
// returned shutdown function flushes pending spans and should be deferred
// by the caller. With tracing enabled, every command dispatch produces an
// engine.dispatch span.
func Setup(ctx context.Context, serviceName string) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	endpoint, enabled := exportTarget()
	if !enabled {
		return noop, nil
	}

	provider, err := newTraceProvider(ctx, serviceName, endpoint)
	if err != nil {
		return noop, err
	}

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return provider.Shutdown, nil
}

func newTraceProvider(ctx context.Context, serviceName, endpoint string) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return nil, err
	}

	rsrc, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return nil, err
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(rsrc),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	), nil
}
