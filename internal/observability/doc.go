// Package observability defines the hook contract between the proxy core
// and whatever backends consume operational events.
//
// The core never talks to Prometheus or OpenTelemetry directly. Components
// accept an optional Observer and report OperationContext values through it:
//
//	client = client.WithObserver(myObserver)
//
// A nil observer disables reporting entirely; components must treat the
// observer as optional and never fail an operation because observing it
// failed.
//
// The metrics package provides the canonical Observer implementation,
// translating operations into Prometheus series.
package observability
