package domain

import "time"

// RoleModerator is the realm role required to manage users through this API.
const RoleModerator = "MODERATOR"

// UserProfile is the composed read model returned by the user lookup: the
// provider's profile fields plus the plain names of the user's realm roles
// and direct group memberships. It is rebuilt on every lookup and never
// cached or mutated after construction.
type UserProfile struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Roles     []string `json:"roles"`
	Groups    []string `json:"groups"`
}

// AuditEntry records one user-creation event for the audit trail.
type AuditEntry struct {
	UserID    string
	Username  string
	Email     string
	Actor     string
	CreatedAt time.Time
}
