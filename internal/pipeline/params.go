package pipeline

import (
	"context"
	"reflect"

	"github.com/MKhiriev/go-typed-routes/internal/validators"
	"github.com/MKhiriev/go-typed-routes/models"
)

type paramsValidator struct {
	names []string
}

// Params returns a validator requiring every name to be present in the path
// parameters. All missing names are reported together as
// 400 {"missingParameters": [...]}. It narrows to PathParams holding only
// the declared names.
func Params(names ...string) Validator {
	return &paramsValidator{names: names}
}

func (v *paramsValidator) Part() Part               { return PartParams }
func (v *paramsValidator) OutputType() reflect.Type { return reflect.TypeFor[PathParams]() }

func (v *paramsValidator) Validate(_ context.Context, req *Request) (Result, error) {
	params, missing := v.collect(req)
	if len(missing) > 0 {
		return Rejected(models.BadRequest(models.MissingParameters{MissingParameters: missing})), nil
	}
	return Narrowed(params), nil
}

func (v *paramsValidator) collect(req *Request) (PathParams, []string) {
	params := make(PathParams, len(v.names))
	var missing []string
	for _, name := range v.names {
		value, ok := req.Params[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		params[name] = value
	}
	return params, missing
}

type typedParamsValidator[T any] struct {
	paramsValidator
}

// TypedParams is like Params but decodes the declared parameters into T,
// matching fields by json tag and converting from strings ("5" → 5).
// A conversion failure is a 400 keyed by "params".
func TypedParams[T any](names ...string) Validator {
	return &typedParamsValidator[T]{paramsValidator{names: names}}
}

func (v *typedParamsValidator[T]) OutputType() reflect.Type { return reflect.TypeFor[T]() }

func (v *typedParamsValidator[T]) Validate(_ context.Context, req *Request) (Result, error) {
	params, missing := v.collect(req)
	if len(missing) > 0 {
		return Rejected(models.BadRequest(models.MissingParameters{MissingParameters: missing})), nil
	}

	var out T
	if err := weakDecode(map[string]string(params), &out); err != nil {
		return Rejected(models.BadRequest(validators.FieldErrors{PartParams.String(): {err.Error()}})), nil
	}
	return Narrowed(out), nil
}
