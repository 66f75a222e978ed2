package upstream

import (
	"context"
	"fmt"
)

// Client is the public entrypoint for computing embeddings upstream.
//
// It hides all provider details (endpoint, HTTP, response shapes) from the
// batching core.
type Client struct {
	provider Provider
}

// NewClient constructs a Client from Config.
// It validates the config and internally constructs the inference provider.
// Application code should depend on *Client, not on Provider or
// InferenceProvider.
func NewClient(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("upstream: invalid config: %w", err)
	}

	p, err := newInferenceProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("upstream: failed to create provider: %w", err)
	}

	return &Client{provider: p}, nil
}

// Embed executes a single batch embedding request.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	return c.provider.Embed(ctx, texts)
}

// Close allows the client to release any internal resources used by the
// provider. Currently this is a no-op unless the provider implements Close().
func (c *Client) Close() error {
	if closer, ok := c.provider.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
