package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-typed-routes/models"
)

// MemberRepository stores organization members. Implementations must be safe
// for concurrent use.
type MemberRepository interface {
	// CreateMember stores member under a new id and returns it.
	CreateMember(ctx context.Context, member models.Member) (models.Member, error)
	// FindMember returns the member, removed or not.
	FindMember(ctx context.Context, organizationID string, id int64) (models.Member, error)
	// ListMembers returns the page selected by filter and the total number of
	// matching members.
	ListMembers(ctx context.Context, filter models.MemberFilter) ([]models.Member, int, error)
	// UpdateMember replaces the stored member with the same organization and id.
	UpdateMember(ctx context.Context, member models.Member) error
	// RemoveMember marks the member removed at the given time by the given
	// user and returns it. Removing an already removed member fails with
	// ErrMemberAlreadyRemoved.
	RemoveMember(ctx context.Context, organizationID string, id int64, at time.Time, by int64) (models.Member, error)
}
