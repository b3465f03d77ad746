package http

import (
	"errors"

	"github.com/MKhiriev/go-typed-routes/internal/app"
	"github.com/MKhiriev/go-typed-routes/internal/service"
	"github.com/MKhiriev/go-typed-routes/internal/store"
	"github.com/MKhiriev/go-typed-routes/internal/validators"
	"github.com/MKhiriev/go-typed-routes/models"
)

var errorEnvelopeMap = map[error]func() models.Envelope{
	store.ErrMemberNotFound:  func() models.Envelope { return models.NotFound(app.MsgMemberNotFound) },
	service.ErrMemberRemoved: func() models.Envelope { return models.Gone(app.MsgMemberRemoved) },
	store.ErrEmailAlreadyExists: func() models.Envelope {
		return models.BadRequest(validators.FieldErrors{"email": {app.MsgEmailAlreadyExists}})
	},
	service.ErrInvalidDataProvided: func() models.Envelope { return models.BadRequest(app.MsgInvalidMemberData) },
}

// envelopeFromError turns a known service error into the envelope answering
// it. Unknown errors are returned as is and end up as a resolution fault.
func envelopeFromError(err error) (models.Envelope, error) {
	for target, envelope := range errorEnvelopeMap {
		if errors.Is(err, target) {
			return envelope(), nil
		}
	}
	return models.Envelope{}, err
}
