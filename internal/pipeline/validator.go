package pipeline

import (
	"context"
	"fmt"
	"reflect"

	"github.com/MKhiriev/go-typed-routes/models"
)

// Part identifies the request part a validator narrows.
type Part int

const (
	PartNone Part = iota
	PartParams
	PartBody
	PartQuery
)

func (p Part) String() string {
	switch p {
	case PartParams:
		return "params"
	case PartBody:
		return "body"
	case PartQuery:
		return "query"
	default:
		return "none"
	}
}

// Result is the outcome of a validator: either a narrowed value for the
// validator's part or a terminal envelope that ends the request.
type Result struct {
	value    any
	envelope models.Envelope
	rejected bool
}

// Narrowed reports a successful validation producing value.
func Narrowed(value any) Result {
	return Result{value: value}
}

// Rejected reports a failed validation. env is written as the response.
func Rejected(env models.Envelope) Result {
	return Result{envelope: env, rejected: true}
}

func (r Result) IsRejected() bool          { return r.rejected }
func (r Result) Value() any                { return r.value }
func (r Result) Envelope() models.Envelope { return r.envelope }

// Validator narrows one part of a request.
//
// Validate returns a Rejected result for client mistakes. A non-nil error is
// reserved for faults of the validator itself and ends the request with 500.
type Validator interface {
	Part() Part
	// OutputType is the Go type of the narrowed value; nil for PartNone.
	OutputType() reflect.Type
	Validate(ctx context.Context, req *Request) (Result, error)
}

// ValidateFunc is the signature of a custom validator body.
type ValidateFunc func(ctx context.Context, req *Request) (Result, error)

type customValidator struct {
	part Part
	out  reflect.Type
	fn   ValidateFunc
}

// Custom builds a validator for part whose narrowed values are of type T.
// A Narrowed value that is not a T is reported as ErrPartTypeMismatch.
func Custom[T any](part Part, fn ValidateFunc) Validator {
	var out reflect.Type
	if part != PartNone {
		out = reflect.TypeFor[T]()
	}
	return &customValidator{part: part, out: out, fn: fn}
}

func (v *customValidator) Part() Part               { return v.part }
func (v *customValidator) OutputType() reflect.Type { return v.out }

func (v *customValidator) Validate(ctx context.Context, req *Request) (Result, error) {
	res, err := v.fn(ctx, req)
	if err != nil || res.IsRejected() || v.out == nil {
		return res, err
	}
	if res.value == nil || !reflect.TypeOf(res.value).AssignableTo(v.out) {
		return Result{}, fmt.Errorf("%w: %s validator produced %T, want %s", ErrPartTypeMismatch, v.part, res.value, v.out)
	}
	return res, nil
}

type noopValidator struct{}

// Noop returns a validator that always passes and narrows nothing.
func Noop() Validator {
	return noopValidator{}
}

func (noopValidator) Part() Part               { return PartNone }
func (noopValidator) OutputType() reflect.Type { return nil }

func (noopValidator) Validate(context.Context, *Request) (Result, error) {
	return Narrowed(nil), nil
}
