// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when no HTTP address
	// is provided in the server configuration, resulting in no transport
	// handler being initialized. This is treated as a fatal misconfiguration
	// and causes the application to fail at startup.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	errMissingDependencies = errors.New("services and authenticator are required")
)
