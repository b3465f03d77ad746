// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the members API served by
// go-typed-routes.
//
// The primary abstraction is [MembersClient]. The package ships an HTTP/REST
// implementation ([NewHTTPMembersClient]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrGone] for 410,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-typed-routes/models"
)

// MembersClient talks to the members API of one organization on behalf of
// the caller identified by the bearer token.
type MembersClient interface {
	// SetToken stores the bearer token attached to every subsequent request.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	GetMember(ctx context.Context, organizationID string, id int64) (models.Member, error)

	// ListMembers returns one page of members. Zero filter fields are not
	// sent, so the server defaults apply.
	ListMembers(ctx context.Context, filter models.MemberFilter) (models.MemberPage, error)

	CreateMember(ctx context.Context, member models.Member) (models.Member, error)
	UpdateMember(ctx context.Context, organizationID string, id int64, patch models.MemberPatch) (models.Member, error)
	RemoveMember(ctx context.Context, organizationID string, id int64) (models.Member, error)

	// Version returns the raw build information reported by the server.
	Version(ctx context.Context) (map[string]string, error)
}
