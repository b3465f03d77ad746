package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/MKhiriev/go-typed-routes/internal/validators"
	"github.com/MKhiriev/go-typed-routes/models"
)

// MsgMalformedBody is reported under the "body" key when the request body
// is not a JSON object.
const MsgMalformedBody = "body must be a valid JSON object"

type bodyValidator[T any] struct {
	schema validators.Validator
}

// Body returns a validator that checks the JSON body against schema and then
// decodes it into T. A nil schema only decodes. With T = json.RawMessage the
// body is passed through unchanged.
func Body[T any](schema validators.Validator) Validator {
	return &bodyValidator[T]{schema: schema}
}

func (v *bodyValidator[T]) Part() Part               { return PartBody }
func (v *bodyValidator[T]) OutputType() reflect.Type { return reflect.TypeFor[T]() }

func (v *bodyValidator[T]) Validate(ctx context.Context, req *Request) (Result, error) {
	if v.schema != nil {
		if res, done, err := check(ctx, v.schema, json.RawMessage(req.Body), PartBody); done {
			return res, err
		}
	}

	var out T
	if _, raw := any(out).(json.RawMessage); raw {
		return Narrowed(any(json.RawMessage(bytes.Clone(req.Body))).(T)), nil
	}
	if len(bytes.TrimSpace(req.Body)) == 0 {
		return Narrowed(out), nil
	}
	if err := json.Unmarshal(req.Body, &out); err != nil {
		return Rejected(models.BadRequest(validators.FieldErrors{PartBody.String(): {err.Error()}})), nil
	}
	return Narrowed(out), nil
}

// check runs schema over doc. done is true when the request must stop there:
// either with a rejection or with a validator fault.
func check(ctx context.Context, schema validators.Validator, doc any, part Part) (res Result, done bool, err error) {
	verr := schema.Validate(ctx, doc)
	if verr == nil {
		return Result{}, false, nil
	}
	if fe, ok := validators.AsFieldErrors(verr); ok {
		return Rejected(models.BadRequest(fe)), true, nil
	}
	if errors.Is(verr, validators.ErrMalformedDocument) {
		return Rejected(models.BadRequest(validators.FieldErrors{part.String(): {MsgMalformedBody}})), true, nil
	}
	return Result{}, true, fmt.Errorf("%s schema: %w", part, verr)
}
