// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pipeline implements the typed request pipeline that every endpoint
// runs through:
//
//	authorization → validators → injector → resolver
//
// A [Runtime] owns one endpoint. It opens a tracing span per request, logs
// each lifecycle step, writes exactly one response and contains every fault
// raised by the injector or the resolver (returned errors and panics alike)
// as a 500 response carrying the fault message.
//
// Validators narrow one request part (params, body or query) each and report
// a tagged [Result]: either the narrowed value or a terminal 400 envelope.
// Injectors derive extra context ([Fragment]) from the raw request and
// compose with [Combine].
package pipeline
