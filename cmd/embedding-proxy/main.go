package main

import (
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/embedding-proxy/internal/batcher"
	"github.com/Aleph-Alpha/embedding-proxy/internal/logger"
	"github.com/Aleph-Alpha/embedding-proxy/internal/metrics"
	"github.com/Aleph-Alpha/embedding-proxy/internal/server"
	"github.com/Aleph-Alpha/embedding-proxy/internal/tracer"
	"github.com/Aleph-Alpha/embedding-proxy/internal/upstream"
)

func main() {
	app := fx.New(
		logger.FXModule,
		metrics.FXModule,
		tracer.FXModule,
		upstream.FXModule,
		batcher.FXModule,
		server.FXModule,
	)

	app.Run()
}
