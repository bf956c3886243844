package keycloak

// CredentialTypePassword is the credential type for plain password credentials.
const CredentialTypePassword = "password"

// CredentialRepresentation is a credential attached to a user on creation.
type CredentialRepresentation struct {
	Type      string `json:"type"`
	Value     string `json:"value"`
	Temporary bool   `json:"temporary"`
}

// UserRepresentation mirrors Keycloak's admin user representation, limited
// to the fields this service reads and writes.
type UserRepresentation struct {
	ID          string                     `json:"id,omitempty"`
	Username    string                     `json:"username"`
	Email       string                     `json:"email"`
	FirstName   string                     `json:"firstName"`
	LastName    string                     `json:"lastName"`
	Enabled     bool                       `json:"enabled"`
	Credentials []CredentialRepresentation `json:"credentials,omitempty"`
}

// RoleRepresentation is a realm role as returned by the role-mapping endpoints.
type RoleRepresentation struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GroupRepresentation is a group membership entry.
type GroupRepresentation struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path,omitempty"`
}
