package server

import (
	"context"
	"os"
)

// Config holds the settings for the public HTTP server.
type Config struct {
	// Address is the listen address of the embed API.
	Address string
}

// NewConfig reads the server configuration from environment variables.
// SERVER_ADDRESS defaults to ":3000".
func NewConfig() Config {
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = ":3000"
	}

	return Config{Address: address}
}

// Submitter is the contract the handler needs from the batching core.
type Submitter interface {
	Submit(ctx context.Context, input string) ([]float64, error)
}

// Logger is an interface that matches the internal/logger.Logger interface.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}
