package pipeline

import (
	"context"
	"net/url"
	"reflect"

	"github.com/MKhiriev/go-typed-routes/internal/validators"
	"github.com/MKhiriev/go-typed-routes/models"
)

type queryValidator[T any] struct {
	schema validators.Validator
}

// Query returns a validator that checks the query string against schema and
// then decodes it into T, matching fields by json tag and converting from
// strings. Repeated keys decode into slices. With T = url.Values the query is
// passed through unchanged.
func Query[T any](schema validators.Validator) Validator {
	return &queryValidator[T]{schema: schema}
}

func (v *queryValidator[T]) Part() Part               { return PartQuery }
func (v *queryValidator[T]) OutputType() reflect.Type { return reflect.TypeFor[T]() }

func (v *queryValidator[T]) Validate(ctx context.Context, req *Request) (Result, error) {
	if v.schema != nil {
		if res, done, err := check(ctx, v.schema, req.Query, PartQuery); done {
			return res, err
		}
	}

	var out T
	if _, raw := any(out).(url.Values); raw {
		return Narrowed(any(req.Clone().Query).(T)), nil
	}

	doc, err := validators.Document(req.Query)
	if err != nil {
		return Result{}, err
	}
	if err := weakDecode(doc, &out); err != nil {
		return Rejected(models.BadRequest(validators.FieldErrors{PartQuery.String(): {err.Error()}})), nil
	}
	return Narrowed(out), nil
}
