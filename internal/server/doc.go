// Package server exposes the proxy's public HTTP API.
//
// Clients see a plain one-request-in, one-response-out interface:
//
//	POST /embed
//	{"inputs": "Hello world"}
//
//	200 OK
//	{"embedding": [0.0123, -0.0456, 0.0789]}
//
// Behind the handler every request becomes one job in the batching core;
// the handler blocks on the job's reply and renders it. Failures of the
// batch the request landed in surface as:
//
//	502 Bad Gateway
//	{"error": "..."}
//
// Malformed requests (non-POST, invalid JSON, empty inputs) are rejected
// before a job is ever created, with 405 or 400.
//
// GET /healthz answers 200 for liveness probes.
//
// SERVER_ADDRESS configures the listen address (default ":3000"). The Fx
// module starts the listener with the application and shuts it down
// gracefully on stop.
package server
