// Package tracing defines the span contract the request pipeline relies on
// and implements it on top of OpenTelemetry.
//
// The pipeline never touches OpenTelemetry directly: it opens one Span per
// request through a Tracer, tags it with the caller identity, logs lifecycle
// events on it and finishes it exactly once.
package tracing

//go:generate mockgen -source=interfaces.go -destination=../mock/tracing_mock.go -package=mock

import "context"

// Tracer opens spans keyed by the controller and method of an endpoint.
// Implementations must be safe for concurrent use.
type Tracer interface {
	// Start opens a span for one invocation of controller.method. The
	// returned context carries the span so downstream calls become children.
	Start(ctx context.Context, controller, method string) (context.Context, Span)
}

// Span is a per-request observability handle. A Span is owned by the
// invocation that opened it and is never shared across requests.
type Span interface {
	// SetTags attaches key/value attributes. Nil values are skipped.
	SetTags(tags map[string]any)

	// LogEvent records a named lifecycle event with an optional payload.
	LogEvent(event string, payload any)

	// SetError marks the span as failed.
	SetError(err error)

	// Finish ends the span. Calls after the first are no-ops.
	Finish()
}
