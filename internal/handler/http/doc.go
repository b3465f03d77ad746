// Package http implements the HTTP transport layer of the application.
//
// It builds the top-level chi router: request tracing, access logging,
// OpenTelemetry instrumentation, panic recovery, request timeouts, per-client
// rate limiting and response compression are applied here, and the typed
// pipeline controllers are mounted under their base paths.
//
// The bundled controllers are [MembersController] (/orgs/{orgId}/members)
// and [SystemController] (/api).
package http
