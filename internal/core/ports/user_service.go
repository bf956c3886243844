package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/itm-space/backend-resources/internal/core/domain"
)

// CreateUserInput carries the already-validated fields of a user-creation
// request. Actor is the authenticated caller, recorded for auditing only.
type CreateUserInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Actor     string
}

// UserService shapes API requests into identity-provider calls and composes
// provider results into API responses.
type UserService interface {
	// CreateUser creates the user in the identity provider. The assigned
	// identifier is logged and audited but not returned to the caller.
	CreateUser(ctx context.Context, input CreateUserInput) error

	// GetUserByID returns the composed profile for id, or the gateway fault
	// of whichever fragment fetch failed.
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.UserProfile, error)
}
