package upstream

import (
	"fmt"
	"os"
	"strconv"
)

// UPSTREAM_ENDPOINT must point to the embed route of the inference service,
// e.g. "http://127.0.0.1:8080/embed". The client posts batch requests to it
// verbatim, so callers supply the full URL.

type Config struct {
	// Inference endpoint and auth
	Endpoint     string // Full URL of the upstream embedding endpoint
	ServiceToken string // Optional bearer token for the upstream service
	HTTPTimeoutS int    // HTTP timeout seconds (default 30)
}

// NewConfig reads from environment variables.
func NewConfig() *Config {
	timeout := 30
	if v := os.Getenv("UPSTREAM_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}

	return &Config{
		Endpoint:     os.Getenv("UPSTREAM_ENDPOINT"),
		ServiceToken: os.Getenv("UPSTREAM_SERVICE_TOKEN"),
		HTTPTimeoutS: timeout,
	}
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("upstream: missing UPSTREAM_ENDPOINT")
	}
	return nil
}
