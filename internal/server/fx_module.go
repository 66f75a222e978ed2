package server

import (
	"context"
	"net/http"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/embedding-proxy/internal/batcher"
	"github.com/Aleph-Alpha/embedding-proxy/internal/logger"
)

// FXModule wires the public HTTP server into Fx.
//
// Dependencies required by this module:
//   - *batcher.Batcher (the Submitter), *logger.Logger,
//     *metrics.Metrics and *tracer.Tracer
var FXModule = fx.Module(
	"server",

	fx.Provide(
		NewConfig,
		func(b *batcher.Batcher) Submitter { return b },
		func(l *logger.Logger) Logger { return l },
		NewServer,
	),

	fx.Invoke(RegisterServerLifecycle),
)

// RegisterServerLifecycle manages the startup and graceful shutdown of the
// embed API server.
//
// The lifecycle hook:
//   - OnStart: Launches the HTTP server in a background goroutine.
//   - OnStop: Gracefully shuts the server down, letting in-flight requests
//     finish within the stop context's deadline.
func RegisterServerLifecycle(lc fx.Lifecycle, s *Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("Starting embed API server", nil, map[string]interface{}{
					"address": s.HTTP.Addr,
				})

				if err := s.HTTP.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("Error starting embed API server", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down embed API server", nil, nil)
			return s.HTTP.Shutdown(ctx)
		},
	})
}
