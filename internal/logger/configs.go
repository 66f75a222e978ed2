package logger

import "os"

const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config holds the settings for constructing the service logger.
type Config struct {
	// Level is the minimum log level: "debug", "info", "warning" or "error".
	Level string

	// ServiceName is attached to every log entry as the "service" field.
	ServiceName string
}

// NewConfig reads the logger configuration from environment variables.
//
// LOG_LEVEL defaults to "info"; SERVICE_NAME defaults to "embedding-proxy".
func NewConfig() Config {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = Info
	}

	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "embedding-proxy"
	}

	return Config{
		Level:       level,
		ServiceName: service,
	}
}
