package keycloak

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// CreateUser creates a user in realm and returns the identifier Keycloak
// assigned to it. The Admin API responds 201 with no body; the new ID is the
// trailing segment of the Location header.
func (c *Client) CreateUser(ctx context.Context, realm string, user UserRepresentation) (string, error) {
	path := fmt.Sprintf("/admin/realms/%s/users", url.PathEscape(realm))
	_, header, err := c.do(ctx, http.MethodPost, path, user, http.StatusCreated)
	if err != nil {
		return "", err
	}

	location := header.Get("Location")
	if location == "" {
		return "", fmt.Errorf("create user: response missing Location header")
	}
	id := location[strings.LastIndex(location, "/")+1:]
	if id == "" {
		return "", fmt.Errorf("create user: malformed Location header %q", location)
	}
	return id, nil
}

// GetUser fetches the raw representation of one user.
func (c *Client) GetUser(ctx context.Context, realm, userID string) (*UserRepresentation, error) {
	path := fmt.Sprintf("/admin/realms/%s/users/%s", url.PathEscape(realm), url.PathEscape(userID))
	var user UserRepresentation
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetRealmRoleMappings fetches the realm-level role mappings of a user.
// Client-level and composite mappings are deliberately not requested.
func (c *Client) GetRealmRoleMappings(ctx context.Context, realm, userID string) ([]RoleRepresentation, error) {
	path := fmt.Sprintf("/admin/realms/%s/users/%s/role-mappings/realm", url.PathEscape(realm), url.PathEscape(userID))
	var roles []RoleRepresentation
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// GetUserGroups fetches the direct group memberships of a user.
func (c *Client) GetUserGroups(ctx context.Context, realm, userID string) ([]GroupRepresentation, error) {
	path := fmt.Sprintf("/admin/realms/%s/users/%s/groups", url.PathEscape(realm), url.PathEscape(userID))
	var groups []GroupRepresentation
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}
