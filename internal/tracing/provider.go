package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/MKhiriev/go-typed-routes/internal/config"
	"github.com/MKhiriev/go-typed-routes/internal/logger"
)

// Exporter names accepted in config.Tracing.Exporter.
const (
	ExporterStdout = "stdout"
	ExporterNone   = "none"
)

// InitProvider builds the OpenTelemetry tracer provider described by cfg,
// installs it (and the W3C trace-context propagator) globally and returns it
// together with its shutdown function.
//
// An empty exporter name means ExporterNone: spans are created but never
// exported.
func InitProvider(cfg config.Tracing, log *logger.Logger) (trace.TracerProvider, func(context.Context) error, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	switch cfg.Exporter {
	case "", ExporterNone:
		tp := noop.NewTracerProvider()
		otel.SetTracerProvider(tp)
		log.Info().Str("exporter", ExporterNone).Msg("tracing disabled")
		return tp, func(context.Context) error { return nil }, nil

	case ExporterStdout:
		var opts []stdouttrace.Option
		if cfg.PrettyPrint {
			opts = append(opts, stdouttrace.WithPrettyPrint())
		}
		exporter, err := stdouttrace.New(opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("error creating stdout trace exporter: %w", err)
		}

		res, err := resource.Merge(
			resource.Default(),
			resource.NewWithAttributes(
				"",
				semconv.ServiceName(cfg.ServiceName),
			),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("error creating trace resource: %w", err)
		}

		tp := sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exporter),
			sdktrace.WithResource(res),
		)
		otel.SetTracerProvider(tp)

		log.Info().Str("exporter", ExporterStdout).Str("service", cfg.ServiceName).Msg("OpenTelemetry initialized")
		return tp, tp.Shutdown, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownExporter, cfg.Exporter)
	}
}
