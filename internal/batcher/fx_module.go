package batcher

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/embedding-proxy/internal/logger"
	"github.com/Aleph-Alpha/embedding-proxy/internal/observability"
	"github.com/Aleph-Alpha/embedding-proxy/internal/tracer"
	"github.com/Aleph-Alpha/embedding-proxy/internal/upstream"
)

// FXModule wires the batching core into Fx.
//
// It provides:
//   - *Config                (NewConfig)
//   - *Batcher               (newBatcherFromDeps)
//   - Lifecycle hooks        (RegisterBatcherLifecycle)
//
// Dependencies required by this module:
//   - *upstream.Client, *logger.Logger
//   - observability.Observer and *tracer.Tracer, attached as hooks
var FXModule = fx.Module(
	"batcher",

	fx.Provide(
		NewConfig,          // -> *Config
		newBatcherFromDeps, // -> *Batcher
	),

	fx.Invoke(RegisterBatcherLifecycle),
)

func newBatcherFromDeps(
	cfg *Config,
	client *upstream.Client,
	log *logger.Logger,
	observer observability.Observer,
	trc *tracer.Tracer,
) (*Batcher, error) {
	b, err := NewBatcher(cfg, client, log)
	if err != nil {
		return nil, err
	}
	return b.WithObserver(observer).WithTracer(trc), nil
}

// RegisterBatcherLifecycle starts the scheduler with the application and
// drains it on shutdown: intake closes, queued jobs are still batched and
// dispatched, and Stop returns once every reply has been delivered.
func RegisterBatcherLifecycle(lc fx.Lifecycle, b *Batcher) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			b.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return b.Stop(ctx)
		},
	})
}
