package models

// Identity describes the authenticated caller of a request.
// It is attached to the request context by the authorization middleware and
// copied into every pipeline request and trace span.
type Identity struct {
	// UserID is the identifier of the authenticated user.
	UserID int64 `json:"userId"`

	// OrganizationID is the organization the user acts on behalf of.
	// Empty when the token carries no organization claim.
	OrganizationID string `json:"organizationId,omitempty"`
}

// IsAnonymous reports whether no caller was authenticated.
func (i Identity) IsAnonymous() bool {
	return i.UserID == 0 && i.OrganizationID == ""
}
