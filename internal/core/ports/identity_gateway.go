package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/itm-space/backend-resources/pkg/keycloak"
)

// IdentityGateway is the sole boundary to the identity provider's admin API.
// Implementations are stateless pass-throughs: one blocking remote call per
// method, no retries, no caching. Failures surface as *domain.GatewayError.
type IdentityGateway interface {
	// CreateUser issues one remote creation call and returns the identifier
	// assigned by the provider.
	CreateUser(ctx context.Context, user keycloak.UserRepresentation) (string, error)

	// GetUserByID fetches the raw profile representation.
	GetUserByID(ctx context.Context, id uuid.UUID) (*keycloak.UserRepresentation, error)

	// GetUserRoles fetches the realm-scoped role mappings, in provider order.
	GetUserRoles(ctx context.Context, id uuid.UUID) ([]keycloak.RoleRepresentation, error)

	// GetUserGroups fetches the direct group memberships, in provider order.
	GetUserGroups(ctx context.Context, id uuid.UUID) ([]keycloak.GroupRepresentation, error)
}
