package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type InferenceProvider struct {
	endpoint     string
	serviceToken string
	httpClient   *http.Client
}

func newInferenceProvider(cfg *Config) (*InferenceProvider, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("inference: missing UPSTREAM_ENDPOINT")
	}

	return &InferenceProvider{
		endpoint:     cfg.Endpoint,
		serviceToken: cfg.ServiceToken,
		httpClient:   &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutS) * time.Second},
	}, nil
}

// Embed posts the ordered texts to the upstream endpoint as one batch
// request and returns the ordered embedding vectors.
//
// The request body is {"inputs": [texts...]}. The upstream service may
// answer with either a bare JSON array of float arrays (batch mode) or an
// object with a "data" field containing that array; both are accepted.
//
// A vector count differing from the input count fails the call with
// ErrShapeMismatch.
func (p *InferenceProvider) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("inference: no texts provided")
	}

	reqBody := map[string]any{
		"inputs": texts,
	}

	var raw json.RawMessage
	if err := p.postJSON(ctx, p.endpoint, reqBody, &raw); err != nil {
		return nil, err
	}

	vectors, err := decodeEmbeddings(raw)
	if err != nil {
		return nil, err
	}

	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("%w: got %d vectors for %d inputs", ErrShapeMismatch, len(vectors), len(texts))
	}

	return vectors, nil
}

// decodeEmbeddings handles both upstream response shapes.
func decodeEmbeddings(raw json.RawMessage) ([][]float64, error) {
	var direct [][]float64
	if err := json.Unmarshal(raw, &direct); err == nil {
		return direct, nil
	}

	var wrapped struct {
		Data [][]float64 `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Data != nil {
		return wrapped.Data, nil
	}

	return nil, fmt.Errorf("inference: unrecognized response shape")
}
