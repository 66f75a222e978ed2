package batcher

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// MaxBatchSize is the number of jobs at which a batch closes
	// immediately, without waiting for the deadline.
	MaxBatchSize int

	// MaxWait bounds how long the first job of a batch waits for company.
	// The deadline is anchored to the first job's admission and does not
	// reset as further jobs are absorbed. Zero closes every batch as soon
	// as its first job arrives.
	MaxWait time.Duration

	// MaxInflightDispatches optionally caps the number of concurrent
	// upstream calls. Zero means unlimited: one goroutine per closed
	// batch, as many in flight as batches close.
	MaxInflightDispatches int
}

// NewConfig reads from environment variables.
//
// Defaults match the upstream server limits: batches of up to 32 texts,
// held for at most 10 seconds.
func NewConfig() *Config {
	size := 32
	if v := os.Getenv("BATCHER_MAX_BATCH_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			size = n
		}
	}

	waitMS := 10_000
	if v := os.Getenv("BATCHER_MAX_WAIT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			waitMS = n
		}
	}

	inflight := 0
	if v := os.Getenv("BATCHER_MAX_INFLIGHT_DISPATCHES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			inflight = n
		}
	}

	return &Config{
		MaxBatchSize:          size,
		MaxWait:               time.Duration(waitMS) * time.Millisecond,
		MaxInflightDispatches: inflight,
	}
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.MaxBatchSize < 1 {
		return fmt.Errorf("batcher: BATCHER_MAX_BATCH_SIZE must be at least 1, got %d", c.MaxBatchSize)
	}
	if c.MaxWait < 0 {
		return fmt.Errorf("batcher: BATCHER_MAX_WAIT_MS must not be negative")
	}
	if c.MaxInflightDispatches < 0 {
		return fmt.Errorf("batcher: BATCHER_MAX_INFLIGHT_DISPATCHES must not be negative")
	}
	return nil
}

// Inference is the contract the dispatcher needs from the upstream client.
// The returned slice must hold one vector per input text, at the same index.
type Inference interface {
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}

// Logger is an interface that matches the internal/logger.Logger interface.
// It allows the package to use any logging implementation that conforms to
// these methods.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}
