package discord

import (
	"errors"
	"fmt"
)

// Sentinel errors for the status codes the API contract distinguishes.
// All of them are terminal, the client never retries.
var (
	ErrAuthentication = errors.New("invalid token")
	ErrAuthorization  = errors.New("access to channel forbidden")
	ErrNotFound       = errors.New("channel not found")
)

// HTTPError is returned for any non-success status the sentinels above
// do not cover. Body holds the raw response body for diagnostics.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status code: %d: %s", e.Status, e.Body)
}

// NetworkError wraps a transport-level failure (timeout, connection
// reset, DNS) so callers can tell it apart from an API-level error.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
