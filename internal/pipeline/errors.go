package pipeline

import "errors"

var (
	ErrBodyTooLarge       = errors.New("request body too large")
	ErrIncompatibleField  = errors.New("incompatible injected field")
	ErrEmptyEnvelope      = errors.New("resolver returned no envelope")
	ErrPartTypeMismatch   = errors.New("request part type does not match its validators")
	ErrMissingResolver    = errors.New("resolver is required")
	ErrUnexpectedFragment = errors.New("fragment field has unexpected type")
)
