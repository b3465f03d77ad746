// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "net/http"

// Envelope is the result of a pipeline stage: a status code taken from a
// closed set plus an arbitrary payload.
//
// The code is fixed by the constructor that built the envelope ([OK],
// [BadRequest], [NotFound], [Gone], [InternalServerError]) and cannot be set
// independently. The zero Envelope is not valid; use [Envelope.IsZero] to
// detect it.
type Envelope struct {
	code    int
	content any
}

// OK builds a 200 envelope.
func OK(content any) Envelope {
	return Envelope{code: http.StatusOK, content: content}
}

// BadRequest builds a 400 envelope. Validators use it for rejections.
func BadRequest(content any) Envelope {
	return Envelope{code: http.StatusBadRequest, content: content}
}

// NotFound builds a 404 envelope.
func NotFound(content any) Envelope {
	return Envelope{code: http.StatusNotFound, content: content}
}

// Gone builds a 410 envelope.
func Gone(content any) Envelope {
	return Envelope{code: http.StatusGone, content: content}
}

// InternalServerError builds a 500 envelope.
func InternalServerError(content any) Envelope {
	return Envelope{code: http.StatusInternalServerError, content: content}
}

// Code returns the HTTP status code of the envelope.
func (e Envelope) Code() int {
	return e.code
}

// Content returns the payload of the envelope.
func (e Envelope) Content() any {
	return e.content
}

// IsZero reports whether e was built without one of the constructors.
func (e Envelope) IsZero() bool {
	return e.code == 0
}
