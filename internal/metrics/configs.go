package metrics

import "os"

// Config holds the settings for the Prometheus metrics endpoint.
type Config struct {
	// Address is the listen address of the /metrics HTTP server.
	Address string

	// ServiceName is attached to all metrics as a constant "service" label.
	ServiceName string

	// EnableDefaultCollectors controls registration of the Go runtime,
	// process and build info collectors.
	EnableDefaultCollectors bool
}

// NewConfig reads the metrics configuration from environment variables.
//
// METRICS_ADDRESS defaults to ":9090". Default collectors are enabled unless
// METRICS_DISABLE_DEFAULT_COLLECTORS is set to "true".
func NewConfig() Config {
	address := os.Getenv("METRICS_ADDRESS")
	if address == "" {
		address = ":9090"
	}

	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "embedding-proxy"
	}

	return Config{
		Address:                 address,
		ServiceName:             service,
		EnableDefaultCollectors: os.Getenv("METRICS_DISABLE_DEFAULT_COLLECTORS") != "true",
	}
}
