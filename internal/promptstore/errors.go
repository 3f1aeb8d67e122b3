package promptstore

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable indicates the store could not be reached.
	ErrUnavailable = errors.New("prompt store unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("prompt store request timed out")

	// ErrBadStatus indicates a non-2xx response.
	ErrBadStatus = errors.New("prompt store returned non-success status")

	// ErrDecode indicates the response body was not a prompt list.
	ErrDecode = errors.New("invalid prompt store response")
)

// StatusError carries the HTTP status of a failed call. It matches
// ErrBadStatus under errors.Is.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("prompt store returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("prompt store returned status %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error { return ErrBadStatus }

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrBadStatus):
		return "BAD_STATUS"
	case errors.Is(err, ErrDecode):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}
