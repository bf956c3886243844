// Package identity implements the gateway to the Keycloak Admin API. It is
// the only place provider failures are classified; everything past it sees
// a *domain.GatewayError and nothing else.
package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/itm-space/backend-resources/internal/api/metrics"
	"github.com/itm-space/backend-resources/internal/core/domain"
	"github.com/itm-space/backend-resources/pkg/keycloak"
)

// Gateway wraps the admin client together with the target realm. It holds
// no other state and is safe for concurrent use. No operation retries,
// batches, or caches.
type Gateway struct {
	client *keycloak.Client
	realm  string
	log    zerolog.Logger
}

func NewGateway(client *keycloak.Client, realm string, log zerolog.Logger) *Gateway {
	return &Gateway{client: client, realm: realm, log: log}
}

// CreateUser issues one remote creation call. On failure the provider's own
// status code is carried through when it exposed one; transport-level
// failures fall back to a generic server fault.
func (g *Gateway) CreateUser(ctx context.Context, user keycloak.UserRepresentation) (string, error) {
	var id string
	err := g.observe("create_user", func() error {
		var err error
		id, err = g.client.CreateUser(ctx, g.realm, user)
		return err
	})
	if err != nil {
		return "", providerFault(err)
	}
	return id, nil
}

// GetUserByID fetches the raw profile representation for id.
func (g *Gateway) GetUserByID(ctx context.Context, id uuid.UUID) (*keycloak.UserRepresentation, error) {
	var user *keycloak.UserRepresentation
	err := g.observe("get_user", func() error {
		var err error
		user, err = g.client.GetUser(ctx, g.realm, id.String())
		return err
	})
	if err != nil {
		return nil, serverFault(err)
	}
	return user, nil
}

// GetUserRoles fetches the realm-scoped role mappings for id.
func (g *Gateway) GetUserRoles(ctx context.Context, id uuid.UUID) ([]keycloak.RoleRepresentation, error) {
	var roles []keycloak.RoleRepresentation
	err := g.observe("get_user_roles", func() error {
		var err error
		roles, err = g.client.GetRealmRoleMappings(ctx, g.realm, id.String())
		return err
	})
	if err != nil {
		return nil, serverFault(err)
	}
	return roles, nil
}

// GetUserGroups fetches the direct group memberships for id.
func (g *Gateway) GetUserGroups(ctx context.Context, id uuid.UUID) ([]keycloak.GroupRepresentation, error) {
	var groups []keycloak.GroupRepresentation
	err := g.observe("get_user_groups", func() error {
		var err error
		groups, err = g.client.GetUserGroups(ctx, g.realm, id.String())
		return err
	})
	if err != nil {
		return nil, serverFault(err)
	}
	return groups, nil
}

// observe runs one remote call and records its duration and outcome.
func (g *Gateway) observe(operation string, call func() error) error {
	start := time.Now()
	err := call()
	metrics.ProviderRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	outcome := "success"
	if err != nil {
		outcome = "error"
		g.log.Error().Err(err).Str("operation", operation).Msg("identity provider call failed")
	}
	metrics.ProviderRequestsTotal.WithLabelValues(operation, outcome).Inc()
	return err
}

// providerFault maps an admin API error to a GatewayError preserving the
// provider's status code when it exposed one.
func providerFault(err error) *domain.GatewayError {
	var apiErr *keycloak.APIError
	if errors.As(err, &apiErr) {
		return domain.NewGatewayError(apiErr.StatusCode, apiErr.Message)
	}
	return domain.NewGatewayError(500, err.Error())
}

// serverFault collapses every read-path failure to a generic server fault.
// A missing user and a transport failure are indistinguishable here on
// purpose; see the notes in DESIGN.md before changing this.
func serverFault(err error) *domain.GatewayError {
	var apiErr *keycloak.APIError
	if errors.As(err, &apiErr) {
		return domain.NewGatewayError(500, apiErr.Message)
	}
	return domain.NewGatewayError(500, err.Error())
}
