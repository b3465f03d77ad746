package models

import "time"

// Member is a user's membership in an organization.
type Member struct {
	// ID is the identifier of the member within the directory.
	ID int64 `json:"id"`

	// OrganizationID is the organization the member belongs to.
	OrganizationID string `json:"organizationId"`

	// Name is the display name of the member.
	Name string `json:"name"`

	// Email is the contact address of the member. It is unique per
	// organization.
	Email string `json:"email"`

	// Role is one of the Role* constants.
	Role string `json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// CreatedBy and UpdatedBy are the user ids of the callers that created
	// and last changed the member. Zero for anonymous callers.
	CreatedBy int64 `json:"createdBy"`
	UpdatedBy int64 `json:"updatedBy"`

	// RemovedAt is set once the member has been removed. Removed members
	// are kept so that lookups can tell "removed" from "never existed".
	RemovedAt *time.Time `json:"removedAt,omitempty"`
}

// Member roles.
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Roles lists every valid member role.
var Roles = []string{RoleOwner, RoleAdmin, RoleMember}

// IsRemoved reports whether the member has been removed.
func (m Member) IsRemoved() bool {
	return m.RemovedAt != nil
}

// MemberPage is one page of a member listing.
type MemberPage struct {
	Members []Member `json:"members"`
	Total   int      `json:"total"`
	Offset  int      `json:"offset"`
	Limit   int      `json:"limit"`
}

// MemberFilter selects members of one organization.
type MemberFilter struct {
	OrganizationID string
	// Role keeps only members with this role when non-empty.
	Role string
	// IncludeRemoved keeps removed members in the result.
	IncludeRemoved bool
	Offset         int
	// Limit caps the page size; zero means no cap.
	Limit int
}

// MemberPatch lists the member fields to change. Nil fields are kept.
type MemberPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

// IsEmpty reports whether the patch changes nothing.
func (p MemberPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Role == nil
}
