package pipeline

import (
	"net/http"

	"github.com/MKhiriev/go-typed-routes/internal/utils"
	"github.com/MKhiriev/go-typed-routes/models"
)

// writeEnvelope serializes env. Strings are sent as text/plain, byte slices
// as application/octet-stream, nil as an empty body and everything else as
// JSON. Nothing is written when JSON encoding fails.
func writeEnvelope(w http.ResponseWriter, env models.Envelope) error {
	switch content := env.Content().(type) {
	case nil:
		w.WriteHeader(env.Code())
		return nil
	case string:
		_, err := utils.WriteText(w, content, env.Code())
		return err
	case []byte:
		w.Header().Set("Content-Type", "application/octet-stream")
		w.WriteHeader(env.Code())
		_, err := w.Write(content)
		return err
	default:
		_, err := utils.WriteJSON(w, content, env.Code())
		return err
	}
}

// statusWriter remembers whether a response was started so a late fault
// does not write a second one.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}
	w.status = code
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
