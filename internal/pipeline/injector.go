package pipeline

import (
	"fmt"
	"maps"
	"reflect"

	"github.com/MKhiriev/go-typed-routes/internal/tracing"
)

// Fragment is the set of named fields produced by an Injector.
type Fragment map[string]any

// InjectorContext describes the endpoint an injector runs for.
type InjectorContext struct {
	Controller string
	Method     string
	Span       tracing.Span
}

// Injector derives a Fragment from the raw request. It must not mutate req.
// A returned error or a panic is a resolution fault.
type Injector func(req *Request, ic InjectorContext) (Fragment, error)

// Combine returns an injector producing the union of the fragments of first
// and second. When both produce a field, second's value wins; the two values
// must then have the same dynamic type, otherwise the combined injector fails
// with ErrIncompatibleField. An untyped nil only matches another untyped nil,
// so optional fields should use typed nils (e.g. (*User)(nil)).
func Combine(first, second Injector) Injector {
	return func(req *Request, ic InjectorContext) (Fragment, error) {
		left, err := run(first, req, ic)
		if err != nil {
			return nil, err
		}
		right, err := run(second, req, ic)
		if err != nil {
			return nil, err
		}
		return merge(left, right)
	}
}

// CombineAll folds Combine over injectors from left to right. With no
// arguments it returns an injector producing an empty fragment.
func CombineAll(injectors ...Injector) Injector {
	if len(injectors) == 0 {
		return Empty
	}
	combined := injectors[0]
	for _, next := range injectors[1:] {
		combined = Combine(combined, next)
	}
	return combined
}

// Empty produces an empty fragment.
func Empty(*Request, InjectorContext) (Fragment, error) {
	return Fragment{}, nil
}

// Static returns an injector producing a copy of f for every request.
func Static(f Fragment) Injector {
	return func(*Request, InjectorContext) (Fragment, error) {
		return maps.Clone(f), nil
	}
}

// Field reads key from f as a T. It reports false when the key is absent
// or holds a value of another type.
func Field[T any](f Fragment, key string) (T, bool) {
	v, ok := f[key].(T)
	return v, ok
}

// MustField is like Field but returns ErrUnexpectedFragment when the key is
// missing or mistyped.
func MustField[T any](f Fragment, key string) (T, error) {
	v, ok := Field[T](f, key)
	if !ok {
		return v, fmt.Errorf("%w: %s is %T", ErrUnexpectedFragment, key, f[key])
	}
	return v, nil
}

func run(injector Injector, req *Request, ic InjectorContext) (Fragment, error) {
	if injector == nil {
		return Fragment{}, nil
	}
	f, err := injector(req, ic)
	if err != nil {
		return nil, err
	}
	if f == nil {
		f = Fragment{}
	}
	return f, nil
}

func merge(left, right Fragment) (Fragment, error) {
	out := make(Fragment, len(left)+len(right))
	maps.Copy(out, left)
	for key, value := range right {
		if prev, ok := out[key]; ok && reflect.TypeOf(prev) != reflect.TypeOf(value) {
			return nil, fmt.Errorf("%w: %q is %T, then %T", ErrIncompatibleField, key, prev, value)
		}
		out[key] = value
	}
	return out, nil
}
