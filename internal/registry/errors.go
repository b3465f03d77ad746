package registry

import "errors"

var (
	ErrControllerFrozen = errors.New("controller is already applied")
	ErrDuplicateRoute   = errors.New("route is already registered")
	ErrInvalidRoute     = errors.New("invalid route")
)
