package app

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// initTracing installs the global tracer provider selected by TraceExporter.
// With "none" the global no-op provider stays in place.
func initTracing(ctx context.Context, cfg Config) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	var exporter sdktrace.SpanExporter
	switch cfg.TraceExporter {
	case TraceExporterNone:
		return noop, nil
	case TraceExporterStdout:
		exporter, err = stdouttrace.New(stdouttrace.WithWriter(os.Stderr))
	case TraceExporterOTLP:
		exporter, err = otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(cfg.OTLPEndpoint))
	default:
		return noop, fmt.Errorf("unknown trace exporter %q", cfg.TraceExporter)
	}
	if err != nil {
		return noop, fmt.Errorf("create %s exporter: %w", cfg.TraceExporter, err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(ServiceName),
			semconv.ServiceVersion(BuildVersion),
			semconv.DeploymentEnvironment(cfg.Env),
		),
	)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}
