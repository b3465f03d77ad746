package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-typed-routes/internal/app"
	"github.com/MKhiriev/go-typed-routes/internal/logger"
	"github.com/MKhiriev/go-typed-routes/internal/utils"
)

// withRecovery answers 500 when a handler outside a pipeline panics.
// Pipelines contain their own panics.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Bytes("stack", debug.Stack()).
				Str("uri", r.RequestURI).
				Msgf("recovered from panic: %v", rec)
			_, _ = utils.WriteText(w, app.MsgInternalServerError, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
