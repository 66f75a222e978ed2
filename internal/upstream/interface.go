package upstream

import "context"

// Provider contract
type Provider interface {
	// Embed computes embeddings for the given texts in order. The returned
	// slice has exactly one vector per input text, at the same index, or
	// the call as a whole fails with a single error.
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}
