// Package keycloak is a minimal client for the Keycloak Admin REST API.
//
// It authenticates with the service-account (client_credentials) grant and
// exposes only the administrative operations this service needs: creating a
// user and reading a user's representation, realm-role mappings, and group
// memberships.
package keycloak

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	defaultTimeout        = 10 * time.Second
	defaultIdleConns      = 100
	tokenExpirySlack      = 30 * time.Second
	tokenEndpointTemplate = "/realms/%s/protocol/openid-connect/token"
)

// Client talks to one Keycloak installation. It is safe for concurrent use;
// the only mutable state is the cached service-account token.
type Client struct {
	baseURL      string
	authRealm    string
	clientID     string
	clientSecret string
	httpClient   *http.Client

	tokenMu     sync.RWMutex
	token       string
	tokenExpiry time.Time
}

// Option customises a Client created by New.
type Option func(*Client)

// WithHTTPClient replaces the default pooled HTTP client. Useful for tests
// and for callers that need custom TLS or proxy settings.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout on the default HTTP client.
// Ignored when WithHTTPClient is also given.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if c.httpClient != nil && d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// New builds a Client for the Keycloak server at baseURL. authRealm is the
// realm the service account lives in (typically "master"); clientID and
// clientSecret identify the confidential client used for the
// client_credentials grant.
func New(baseURL, authRealm, clientID, clientSecret string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("keycloak: base URL is required")
	}
	if authRealm == "" {
		return nil, fmt.Errorf("keycloak: auth realm is required")
	}
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("keycloak: client credentials are required")
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConns = defaultIdleConns
	transport.MaxIdleConnsPerHost = defaultIdleConns

	c := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		authRealm:    authRealm,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: transport,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Ping verifies the Keycloak server is reachable by fetching the public
// descriptor of the auth realm. No token is required.
func (c *Client) Ping(ctx context.Context) error {
	endpoint := c.baseURL + "/realms/" + url.PathEscape(c.authRealm)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("keycloak ping: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("keycloak ping: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("keycloak ping: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// accessToken returns a valid service-account token, reusing the cached one
// until shortly before it expires.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.tokenMu.RLock()
	if c.token != "" && time.Now().Before(c.tokenExpiry.Add(-tokenExpirySlack)) {
		token := c.token
		c.tokenMu.RUnlock()
		return token, nil
	}
	c.tokenMu.RUnlock()

	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()

	// Another goroutine may have refreshed while we waited for the lock.
	if c.token != "" && time.Now().Before(c.tokenExpiry.Add(-tokenExpirySlack)) {
		return c.token, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
	}
	endpoint := c.baseURL + fmt.Sprintf(tokenEndpointTemplate, url.PathEscape(c.authRealm))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := readBody(resp)
	if err != nil {
		return "", fmt.Errorf("token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", newAPIError(resp.StatusCode, body)
	}

	var tr struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", fmt.Errorf("token response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("token response: empty access_token")
	}

	c.token = tr.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	return c.token, nil
}
