package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a 404 on a single-resource fetch. Views render it as
	// an explicit not-found state rather than a generic error.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized marks a 401. The transport layer has already cleared
	// the stored credential by the time callers see this.
	ErrUnauthorized = errors.New("unauthorized")
)

// TransportError wraps a network-level failure: the backend never produced a
// response. Not retried automatically.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("backend unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is a structured rejection from the backend (4xx/5xx with an error
// payload). Message is safe to show to the user verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend rejected request (%d): %s", e.Status, e.Message)
}

func IsNotFound(err error) bool     { return errors.Is(err, ErrNotFound) }
func IsUnauthorized(err error) bool { return errors.Is(err, ErrUnauthorized) }

func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
