package pipeline

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-typed-routes/internal/utils"
	"github.com/MKhiriev/go-typed-routes/models"
)

// PathParams holds the URL parameters matched by the router.
type PathParams map[string]string

// Request is the raw inbound request as seen by validators and injectors.
type Request struct {
	Method string
	Path   string
	Params PathParams
	Query  url.Values
	Body   []byte
	Caller models.Identity

	// HTTP is the originating request. Stages must not read its body.
	HTTP *http.Request
}

// NewRequest captures r. The body is read once; when limit is positive and
// the body is longer, ErrBodyTooLarge is returned.
func NewRequest(r *http.Request, limit int64) (*Request, error) {
	body, err := readBody(r, limit)
	if err != nil {
		return nil, err
	}

	params := PathParams{}
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		for i, key := range rctx.URLParams.Keys {
			if key == "*" || i >= len(rctx.URLParams.Values) {
				continue
			}
			params[key] = rctx.URLParams.Values[i]
		}
	}

	caller, _ := utils.GetIdentityFromContext(r.Context())

	return &Request{
		Method: r.Method,
		Path:   r.URL.Path,
		Params: params,
		Query:  r.URL.Query(),
		Body:   body,
		Caller: caller,
		HTTP:   r,
	}, nil
}

func readBody(r *http.Request, limit int64) ([]byte, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}
	defer r.Body.Close()

	var reader io.Reader = r.Body
	if limit > 0 {
		reader = io.LimitReader(r.Body, limit+1)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("error reading request body: %w", err)
	}
	if limit > 0 && int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, limit)
	}

	r.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}

// Clone returns a deep copy of the request data. The HTTP field is shared.
func (r *Request) Clone() *Request {
	clone := *r
	clone.Params = maps.Clone(r.Params)
	clone.Query = make(url.Values, len(r.Query))
	for k, v := range r.Query {
		clone.Query[k] = append([]string(nil), v...)
	}
	clone.Body = bytes.Clone(r.Body)
	return &clone
}
