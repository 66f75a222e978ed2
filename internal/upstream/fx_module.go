package upstream

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the upstream client into Fx.
//
// It provides:
//   - *Config                (NewConfig)
//   - *Client                (NewClient)
//   - Lifecycle hook         (RegisterUpstreamLifecycle)
var FXModule = fx.Module(
	"upstream",

	fx.Provide(
		NewConfig, // -> *Config
		NewClient, // -> *Client
	),

	fx.Invoke(RegisterUpstreamLifecycle),
)

// RegisterUpstreamLifecycle ensures that the Client (and its provider)
// are properly cleaned up on application shutdown.
func RegisterUpstreamLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
