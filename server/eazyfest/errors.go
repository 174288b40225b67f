package eazyfest

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("already registered")
	ErrCapacityExceeded = errors.New("event is at full capacity")
)

// NetworkError wraps a transport failure where no HTTP response was received.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Error is a non-2xx response from the EazyFest API. It unwraps to one of the
// sentinel errors above so call sites can branch with errors.Is.
type Error struct {
	StatusCode int
	Message    string

	sentinel error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.StatusCode)
}

func (e *Error) Unwrap() error {
	return e.sentinel
}

func newError(statusCode int, message string) *Error {
	var sentinel error
	switch statusCode {
	case http.StatusUnauthorized:
		sentinel = ErrUnauthenticated
	case http.StatusForbidden:
		sentinel = ErrForbidden
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusConflict:
		sentinel = ErrConflict
	}

	return &Error{
		StatusCode: statusCode,
		Message:    message,
		sentinel:   sentinel,
	}
}
