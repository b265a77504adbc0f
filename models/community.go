package models

// NewCommunity is the body of POST /v1/communities.
type NewCommunity struct {
	Name string `json:"name"`
}

// Invitation is the body of POST /v1/communities/{id}/invitations.
type Invitation struct {
	// MemberID is the existing member record the invitation is for.
	MemberID string `json:"member_id"`
	// Email is where the invitation is sent.
	Email string `json:"email"`
}
