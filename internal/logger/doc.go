// Package logger provides the structured logger used across the proxy.
//
// It wraps Uber's Zap with a small surface (Info, Debug, Warn, Error, Fatal)
// that takes an optional error and free-form field maps:
//
//	log := logger.NewLoggerClient(logger.NewConfig())
//	log.Info("Batch closed", nil, map[string]interface{}{
//	    "size":   3,
//	    "reason": "deadline",
//	})
//
// Output is JSON on stderr with ISO8601 timestamps, the process ID and the
// service name attached to every entry.
//
// Configuration comes from the environment:
//
//   - LOG_LEVEL: "debug", "info", "warning" or "error" (default "info")
//   - SERVICE_NAME: value of the "service" field (default "embedding-proxy")
//
// The Fx module logger.FXModule provides the logger and registers a shutdown
// hook that flushes buffered entries.
package logger
