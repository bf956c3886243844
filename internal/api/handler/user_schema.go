package handler

// createUserRequest is the creation payload. Every field is required and
// the email must be syntactically valid; the password travels to the
// identity provider once and is never stored here.
type createUserRequest struct {
	Username  string `json:"username"  validate:"required"`
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
}

// userResponse is the composed profile view. Role and group order is
// exactly what the identity provider returned.
type userResponse struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Roles     []string `json:"roles"`
	Groups    []string `json:"groups"`
}
