// Package upstream provides the HTTP client for the single-request
// embedding inference backend the proxy sits in front of.
//
// # Overview
//
// The package exposes a single public entrypoint, Client, which hides the
// endpoint URL, authentication, request encoding, and the backend's response
// shapes from the batching core.
//
// A client is constructed using:
//
//	client, err := upstream.NewClient(cfg)
//
// and performs exactly one operation:
//
//	vectors, err := client.Embed(ctx, []string{"a", "b", "c"})
//
// The input order is preserved: vectors[i] is the embedding of texts[i].
// The call either succeeds for all texts or fails as a whole with a single
// error; there is no partial result.
//
// # Wire format
//
// Requests are posted as:
//
//	{"inputs": ["text a", "text b"]}
//
// The backend may answer with either a bare array of float arrays, or an
// object carrying the array under a "data" key:
//
//	[[0.1, 0.2], [0.3, 0.4]]
//	{"data": [[0.1, 0.2], [0.3, 0.4]]}
//
// Both shapes are accepted. A response whose vector count differs from the
// input count fails with ErrShapeMismatch; vectors are never truncated or
// padded to fit.
//
// # Configuration
//
// Configuration is sourced from environment variables and constructed by
// NewConfig:
//
//   - UPSTREAM_ENDPOINT (required)
//     Full URL of the upstream embed route.
//
//   - UPSTREAM_SERVICE_TOKEN (optional)
//     Bearer token attached to upstream requests.
//
//   - UPSTREAM_HTTP_TIMEOUT_SECONDS (optional)
//     Request timeout (default: 30 seconds).
//
// # Dependency Injection (Fx)
//
// A ready-to-use Fx module is provided:
//
//	upstream.FXModule
//
// which supplies *upstream.Config and *upstream.Client and registers a
// lifecycle hook to clean up HTTP resources on shutdown.
package upstream
