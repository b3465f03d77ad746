// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation of request
// documents (JSON bodies and query strings).
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - Schema: a declarative Validator over JSON-like documents built from
//     per-field Rules. Every violation is collected (validation never stops
//     at the first error) into FieldErrors, keyed by field path.
//
// Usage patterns:
//  1. Build a Schema with Field/Object and the Rules in rules.go.
//  2. Hand it to a body or query validator of the request pipeline.
//  3. Inspect the returned FieldErrors to report field-level detail.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
