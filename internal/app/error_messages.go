// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// server middleware and the bundled example controllers.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs outside of a pipeline (e.g. a panic in middleware).
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTooManyRequests is returned by the rate limiter.
	MsgTooManyRequests = "too many requests"

	// MsgRequestTimeout is returned when a request exceeds the configured
	// server request timeout.
	MsgRequestTimeout = "request timed out"

	// MsgNotFound is returned for unknown routes and for routes called with
	// an unregistered HTTP method.
	MsgNotFound = "not found"

	// MsgMemberNotFound is returned by the members controller when no member
	// matches the requested id.
	MsgMemberNotFound = "member not found"

	// MsgMemberRemoved is returned by the members controller when the member
	// existed but has been removed.
	MsgMemberRemoved = "member has been removed"

	// MsgOrganizationNotFound is returned when the caller addresses an
	// organization other than the one carried by their token.
	MsgOrganizationNotFound = "organization not found"

	// MsgEmailAlreadyExists is reported under the "email" field when another
	// active member of the organization already uses the address.
	MsgEmailAlreadyExists = "email is already used by another member"

	// MsgInvalidMemberData is returned when a member change leaves a
	// required field blank.
	MsgInvalidMemberData = "name and email must not be blank"
)
