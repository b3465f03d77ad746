package http

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const telemetryOperation = "http.server"

// withTelemetry opens the server span of a request. Pipeline spans opened
// further down become its children.
func (h *Handler) withTelemetry(next http.Handler) http.Handler {
	opts := []otelhttp.Option{
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	}
	if h.tracerProvider != nil {
		opts = append(opts, otelhttp.WithTracerProvider(h.tracerProvider))
	}
	return otelhttp.NewHandler(next, telemetryOperation, opts...)
}
