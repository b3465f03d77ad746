package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrMemberNotFound is returned when no member of the organization has
	// the requested id.
	ErrMemberNotFound = errors.New("member was not found")

	// ErrEmailAlreadyExists is returned when another member of the same
	// organization already uses the email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrMemberAlreadyRemoved is returned when removing a member that has
	// already been removed.
	ErrMemberAlreadyRemoved = errors.New("member is already removed")
)
