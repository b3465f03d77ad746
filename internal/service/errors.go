package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrMemberRemoved is returned when the requested member exists but has
	// been removed.
	ErrMemberRemoved = errors.New("member has been removed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
