package keycloak

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// fakeServer stands in for a Keycloak installation. It serves the token
// endpoint and whatever admin routes the test registers on mux.
func fakeServer(t *testing.T, tokenCalls *atomic.Int64, mux *http.ServeMux) *httptest.Server {
	t.Helper()
	mux.HandleFunc("/realms/master/protocol/openid-connect/token", func(w http.ResponseWriter, r *http.Request) {
		if tokenCalls != nil {
			tokenCalls.Add(1)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse token form: %v", err)
		}
		if got := r.Form.Get("grant_type"); got != "client_credentials" {
			t.Fatalf("unexpected grant_type: %s", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "test-token",
			"expires_in":   300,
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	c, err := New(srv.URL, "master", "backend-gateway", "secret")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return c
}

func TestCreateUser_ParsesLocationHeader(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/realms/itm/users", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Fatalf("unexpected authorization header: %s", got)
		}
		var user UserRepresentation
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if user.Username != "johndoe" || !user.Enabled {
			t.Fatalf("unexpected payload: %+v", user)
		}
		w.Header().Set("Location", r.Host+"/admin/realms/itm/users/53aac623-51c9-4a91-95b0-90e21cf9c291")
		w.WriteHeader(http.StatusCreated)
	})
	srv := fakeServer(t, nil, mux)
	c := newTestClient(t, srv)

	id, err := c.CreateUser(context.Background(), "itm", UserRepresentation{
		Username: "johndoe",
		Email:    "johndoe@gmail.com",
		Enabled:  true,
	})
	if err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	if id != "53aac623-51c9-4a91-95b0-90e21cf9c291" {
		t.Fatalf("unexpected id: %s", id)
	}
}

func TestCreateUser_Conflict(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/realms/itm/users", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"errorMessage":"User exists with same username"}`))
	})
	srv := fakeServer(t, nil, mux)
	c := newTestClient(t, srv)

	_, err := c.CreateUser(context.Background(), "itm", UserRepresentation{Username: "johndoe"})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "User exists with same username" {
		t.Fatalf("unexpected message: %s", apiErr.Message)
	}
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected errors.Is(err, ErrConflict)")
	}
}

func TestGetUser_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/realms/itm/users/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"User not found"}`))
	})
	srv := fakeServer(t, nil, mux)
	c := newTestClient(t, srv)

	_, err := c.GetUser(context.Background(), "itm", "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetRealmRoleMappings_PreservesOrder(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/realms/itm/users/u1/role-mappings/realm", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"1","name":"ROLE_USER"},{"id":"2","name":"ROLE_MODERATOR"}]`))
	})
	srv := fakeServer(t, nil, mux)
	c := newTestClient(t, srv)

	roles, err := c.GetRealmRoleMappings(context.Background(), "itm", "u1")
	if err != nil {
		t.Fatalf("GetRealmRoleMappings returned error: %v", err)
	}
	if len(roles) != 2 || roles[0].Name != "ROLE_USER" || roles[1].Name != "ROLE_MODERATOR" {
		t.Fatalf("unexpected roles: %+v", roles)
	}
}

func TestAccessToken_Cached(t *testing.T) {
	var tokenCalls atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/realms/itm/users/u1/groups", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"g1","name":"GROUP1"}]`))
	})
	srv := fakeServer(t, &tokenCalls, mux)
	c := newTestClient(t, srv)

	for i := 0; i < 3; i++ {
		if _, err := c.GetUserGroups(context.Background(), "itm", "u1"); err != nil {
			t.Fatalf("GetUserGroups returned error: %v", err)
		}
	}
	if got := tokenCalls.Load(); got != 1 {
		t.Fatalf("expected 1 token request, got %d", got)
	}
}

func TestPing(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/realms/master", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"realm":"master"}`))
	})
	srv := fakeServer(t, nil, mux)
	c := newTestClient(t, srv)

	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("Ping returned error: %v", err)
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := New("", "master", "id", "secret"); err == nil {
		t.Fatalf("expected error for empty base URL")
	}
	if _, err := New("http://localhost:8180", "master", "", ""); err == nil {
		t.Fatalf("expected error for missing credentials")
	}
}
