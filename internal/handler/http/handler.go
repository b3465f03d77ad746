package http

import (
	"go.opentelemetry.io/otel/trace"

	"github.com/MKhiriev/go-typed-routes/internal/config"
	"github.com/MKhiriev/go-typed-routes/internal/logger"
	"github.com/MKhiriev/go-typed-routes/internal/registry"
)

type Handler struct {
	controllers []*registry.Controller

	cfg            config.Server
	tracerProvider trace.TracerProvider

	logger *logger.Logger
}

// NewHandler returns a Handler serving controllers. A nil tracerProvider
// makes the HTTP instrumentation use the global provider.
func NewHandler(cfg config.Server, tracerProvider trace.TracerProvider, logger *logger.Logger, controllers ...*registry.Controller) *Handler {
	logger.Info().Int("controllers", len(controllers)).Msg("http handler created")
	return &Handler{
		controllers:    controllers,
		cfg:            cfg,
		tracerProvider: tracerProvider,
		logger:         logger,
	}
}
