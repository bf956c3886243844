package keycloak

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrNotFound indicates the requested resource does not exist (HTTP 404).
	ErrNotFound = errors.New("resource not found")

	// ErrConflict indicates the resource already exists (HTTP 409), e.g. a
	// duplicate username or email on user creation.
	ErrConflict = errors.New("resource conflict")

	// ErrUnauthorized indicates the service-account token was rejected (HTTP 401).
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is an error response from the Keycloak Admin API.
type APIError struct {
	StatusCode int    // HTTP status code
	Message    string // error message extracted from the response body
}

func (e *APIError) Error() string {
	return fmt.Sprintf("keycloak api error (status %d): %s", e.StatusCode, e.Message)
}

// Is matches APIError against the package sentinels by status code.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 404:
		return target == ErrNotFound
	case 409:
		return target == ErrConflict
	}
	return false
}

// newAPIError extracts a structured message from a Keycloak error body.
// Keycloak uses "errorMessage" on admin endpoints and "error" /
// "error_description" on the token endpoint.
func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Message: string(body)}

	var errResp struct {
		ErrorMessage     string `json:"errorMessage"`
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	if json.Unmarshal(body, &errResp) == nil {
		switch {
		case errResp.ErrorMessage != "":
			apiErr.Message = errResp.ErrorMessage
		case errResp.ErrorDescription != "":
			apiErr.Message = errResp.ErrorDescription
		case errResp.Error != "":
			apiErr.Message = errResp.Error
		}
	}
	return apiErr
}
