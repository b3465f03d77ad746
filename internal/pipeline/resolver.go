package pipeline

import (
	"context"

	"github.com/MKhiriev/go-typed-routes/internal/tracing"
	"github.com/MKhiriev/go-typed-routes/models"
)

// Input is the merged, typed view of a request handed to a resolver: the
// injected fragment plus the narrowed params, body and query. It is valid for
// one resolver call and must not be mutated.
type Input[P, B, Q any] struct {
	Fragment Fragment
	Params   P
	Body     B
	Query    Q
	Caller   models.Identity
	Span     tracing.Span
}

// Resolver is the business function of an endpoint. It may block on I/O.
// The returned envelope is written verbatim; a returned error is a
// resolution fault and becomes a 500 carrying err.Error().
type Resolver[P, B, Q any] func(ctx context.Context, in Input[P, B, Q]) (models.Envelope, error)
