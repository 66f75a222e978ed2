package tracer

import (
	"context"
	"log"

	"go.uber.org/fx"
)

// FXModule provides a Uber FX module that configures distributed tracing for
// the application. The module registers the tracer client with the dependency
// injection system and sets up proper lifecycle management to ensure graceful
// startup and shutdown of the tracer.
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewConfig,
		NewClient,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle registers shutdown hooks for the tracer with the
// FX lifecycle. This ensures that tracer resources are properly released
// when the application terminates, preventing resource leaks and ensuring
// traces are flushed to exporters.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Println("INFO: shutting down tracer...")
			if tracer.tracer == nil {
				log.Println("INFO: tracer is nil, skipping shutdown")
				return nil
			}
			return tracer.tracer.Shutdown(ctx)
		},
	})
}
