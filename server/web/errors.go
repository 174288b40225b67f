package web

import (
	"errors"

	"github.com/Muralis01/event-fest/server/eazyfest"
)

// fetchErrorMessage translates a failed read from the API into the message
// shown in place of the content. Reloading the page retries.
func fetchErrorMessage(err error, what string) string {
	var netErr *eazyfest.NetworkError
	switch {
	case errors.As(err, &netErr):
		return "Could not reach the server. Check your connection and reload to try again."
	case errors.Is(err, eazyfest.ErrUnauthenticated):
		return "Your session has expired. Please sign in again."
	case errors.Is(err, eazyfest.ErrNotFound):
		return "The requested " + what + " could not be found."
	}
	return "Failed to load " + what + ". Reload to try again."
}

func registerErrorMessage(err error) string {
	var netErr *eazyfest.NetworkError
	switch {
	case errors.Is(err, eazyfest.ErrCapacityExceeded):
		return "This event is already at full capacity."
	case errors.Is(err, eazyfest.ErrConflict):
		return "You are already registered for this event."
	case errors.Is(err, eazyfest.ErrNotFound):
		return "This event no longer exists."
	case errors.Is(err, eazyfest.ErrForbidden):
		return "You are not allowed to register for this event."
	case errors.As(err, &netErr):
		return "Could not reach the server. Check your connection and try again."
	}
	return "Registration failed. Please try again."
}

func cancelErrorMessage(err error) string {
	var netErr *eazyfest.NetworkError
	switch {
	case errors.Is(err, eazyfest.ErrNotFound):
		return "This registration no longer exists."
	case errors.Is(err, eazyfest.ErrForbidden):
		return "You are not allowed to cancel this registration."
	case errors.As(err, &netErr):
		return "Could not reach the server. Check your connection and try again."
	}
	return "Cancellation failed. Please try again."
}
