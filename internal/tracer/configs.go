package tracer

import "os"

// Config holds the settings for the OpenTelemetry tracer.
type Config struct {
	// ServiceName identifies this service in exported traces.
	ServiceName string

	// AppEnv is the deployment environment attached to all spans,
	// e.g. "development" or "production".
	AppEnv string

	// EnableExport controls whether spans are exported over OTLP HTTP.
	// When false the tracer provider is still installed so span creation
	// stays cheap and uniform, but nothing leaves the process.
	EnableExport bool
}

// NewConfig reads the tracer configuration from environment variables.
//
// The OTLP endpoint itself is configured through the standard
// OTEL_EXPORTER_OTLP_* variables understood by the exporter.
func NewConfig() Config {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "embedding-proxy"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	return Config{
		ServiceName:  service,
		AppEnv:       env,
		EnableExport: os.Getenv("TRACING_ENABLE_EXPORT") == "true",
	}
}
