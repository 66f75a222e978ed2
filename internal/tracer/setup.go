package tracer

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	"github.com/Aleph-Alpha/embedding-proxy/internal/logger"
)

// Tracer provides a simplified API for distributed tracing with
// OpenTelemetry. It wraps the OpenTelemetry TracerProvider and provides
// convenient methods for creating spans and recording errors.
//
// The Tracer is designed to be thread-safe and can be shared across
// goroutines.
type Tracer struct {
	tracer *trace.TracerProvider
	logger *logger.Logger
}

// NewClient creates and initializes a new Tracer instance with OpenTelemetry.
// This function sets up the OpenTelemetry tracer provider with the provided
// configuration, configures trace exporters if enabled, and sets global
// OpenTelemetry settings.
//
// If trace export is enabled in the configuration, this function will set up
// an OTLP HTTP exporter that sends traces to the endpoint configured via the
// standard OTEL_EXPORTER_OTLP_* environment variables. If export fails to
// initialize, it will log a fatal error.
//
// The function also configures resource attributes for the service:
//   - Service name
//   - Deployment environment
//   - Environment tag
func NewClient(cfg Config, log *logger.Logger) *Tracer {
	var options []trace.TracerProviderOption

	if cfg.EnableExport {
		client := otlptracehttp.NewClient()
		exporter, err := otlptrace.New(context.Background(), client)
		if err != nil {
			log.Fatal("cannot initiate tracer", err, nil)
			return nil
		}
		options = append(options, trace.WithBatcher(exporter))
	}

	options = append(options, trace.WithResource(resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.AppEnv),
		attribute.String("environment", cfg.AppEnv),
	)))

	tp := trace.NewTracerProvider(options...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return &Tracer{tracer: tp, logger: log}
}
