package errors

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// APIError is a non-2xx response from the storefront API.
type APIError struct {
	status  int
	message string // Server-provided error message, may be empty.
	method  string
	path    string
}

// NewAPIError creates an API error for the given request and response status.
func NewAPIError(status int, message, method, path string) *APIError {
	return &APIError{
		status:  status,
		message: message,
		method:  method,
		path:    path,
	}
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.message != "" {
		return fmt.Sprintf("%s %s: %d %s", e.method, e.path, e.status, e.message)
	}

	return fmt.Sprintf("%s %s: %d %s", e.method, e.path, e.status, http.StatusText(e.status))
}

// HTTPCode returns the HTTP status code
func (e *APIError) HTTPCode() int {
	return e.status
}

// Message returns the server-provided message
func (e *APIError) Message() string {
	return e.message
}

// ErrorBody is the error envelope the API returns on failures.
type ErrorBody struct {
	Error string `json:"error"`
}

// StatusOf returns the HTTP status of the API error in err's chain, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.status
	}

	return 0
}

// HasStatus reports whether err carries the given API status.
func HasStatus(err error, status int) bool {
	return StatusOf(err) == status
}

// ServerMessage returns the server-provided message in err's chain, or "".
func ServerMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.message
	}

	return ""
}

// Validation errors, raised before any network call.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyEmail         = errors.New("email is required")
	ErrRouteNotFound      = errors.New("route not found")
)
