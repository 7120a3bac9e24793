package ptero

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the panel. Message carries the
// detail of the first entry in the body's "errors" array when present,
// otherwise the raw body text.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("[HTTP %d] %s", e.Status, e.Message)
}

// DecodeError is an apparent-success response whose body could not be
// parsed as JSON. Excerpt holds at most 500 characters of the body.
type DecodeError struct {
	Status  int
	Excerpt string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("[HTTP %d] invalid JSON response: %s", e.Status, e.Excerpt)
}

// TransportError is a connection-level failure: the request never
// produced an HTTP response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "panel unreachable: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsAPIError reports whether err is a panel API error, returning it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a 404 from the panel.
func IsNotFound(err error) bool {
	apiErr, ok := IsAPIError(err)
	return ok && apiErr.Status == http.StatusNotFound
}
