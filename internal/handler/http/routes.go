package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-typed-routes/internal/app"
	"github.com/MKhiriev/go-typed-routes/internal/utils"
)

// Init builds the router and mounts every controller on it. Controllers are
// frozen afterwards.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withTelemetry)
	router.Use(h.withRecovery)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	if h.cfg.RateLimit > 0 {
		router.Use(h.withRateLimit)
	}
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	// must be set before mounting: chi copies them into sub-routers
	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	for _, c := range h.controllers {
		c.Apply(router)
		for _, route := range c.Routes() {
			h.logger.Debug().Str("controller", c.Name()).Msg("route " + route)
		}
	}

	return router
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteText(w, app.MsgNotFound, http.StatusNotFound)
}
