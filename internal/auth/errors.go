// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "errors"

// Sentinel errors of token handling and of the Authorization header parsing.
// Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request does not
	// include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header cannot be
	// split into a scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the header carries the scheme but an
	// empty token.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	ErrInvalidTokenParams = errors.New("invalid params for generating JWT token")
	ErrTokenIsExpired     = errors.New("token is expired")
	ErrInvalidToken       = errors.New("token is invalid")
)
