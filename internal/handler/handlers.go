package handler

import (
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/MKhiriev/go-typed-routes/internal/auth"
	"github.com/MKhiriev/go-typed-routes/internal/config"
	"github.com/MKhiriev/go-typed-routes/internal/handler/http"
	"github.com/MKhiriev/go-typed-routes/internal/logger"
	"github.com/MKhiriev/go-typed-routes/internal/registry"
	"github.com/MKhiriev/go-typed-routes/internal/service"
	"github.com/MKhiriev/go-typed-routes/internal/tracing"
)

type Handlers struct {
	HTTP *http.Handler

	Members *http.MembersController
	System  *http.SystemController
}

// NewHandlers builds the bundled controllers on a shared factory and the
// HTTP handler mounting them. A nil tracerProvider disables tracing.
func NewHandlers(services *service.Services, authenticator *auth.Authenticator, tracerProvider trace.TracerProvider, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if services == nil || authenticator == nil {
		return nil, errMissingDependencies
	}
	if tracerProvider == nil {
		tracerProvider = noop.NewTracerProvider()
	}

	factory := registry.Factory{
		Injector:  http.Injector(),
		Authorize: authenticator.Middleware,
		Logger:    logger,
		Tracer:    tracing.NewTracer(tracerProvider),
		BodyLimit: cfg.BodyLimit,
	}

	handlers := &Handlers{
		Members: http.NewMembersController(factory, services.MemberService),
		System:  http.NewSystemController(factory, services.AppInfoService),
	}
	handlers.HTTP = http.NewHandler(cfg, tracerProvider, logger,
		handlers.System.Controller,
		handlers.Members.Controller,
	)

	return handlers, nil
}
