package domain

import "fmt"

// GatewayError is the single fault class raised by the identity gateway.
// It carries the message and HTTP status the caller should see. The create
// path maps the provider's own status through; every read-path failure is
// reported with a generic 500 regardless of the provider's reason, so a
// missing user and a transport failure look the same to the caller.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("identity provider error (status %d): %s", e.StatusCode, e.Message)
}

// NewGatewayError builds a GatewayError, falling back to 500 when the
// provider did not expose a usable status code.
func NewGatewayError(statusCode int, message string) *GatewayError {
	if statusCode < 400 || statusCode > 599 {
		statusCode = 500
	}
	return &GatewayError{StatusCode: statusCode, Message: message}
}
