// Package apierr defines the error categories the remote API gateway can
// produce. Every failed operation returns exactly one of these; callers
// translate them into a single user-visible message.
package apierr

import (
	"errors"
	"fmt"
)

// NetworkError reports that connectivity was unavailable before a call was
// attempted, or that the transport failed mid-flight.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return "network unavailable: " + e.Err.Error()
	}
	return "network unavailable"
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError is a non-2xx response from the server, carrying the status code
// and its reason text.
type HTTPError struct {
	Status int
	Reason string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("server responded %d %s", e.Status, e.Reason)
}

// ValidationError reports missing or malformed input, caught before any
// network I/O happens.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// InvalidIDError reports a mutation targeting an id outside the range the
// server is known to accept. The mock API behind the default base URL
// silently accepts such ids without persisting them, so they are rejected
// client-side instead.
type InvalidIDError struct {
	ID  int
	Max int
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("id %d is outside the known range [1, %d]", e.ID, e.Max)
}

// Network wraps err as a NetworkError. A nil err is fine; it marks a failed
// connectivity check rather than a transport failure.
func Network(err error) error {
	return &NetworkError{Err: err}
}

// HTTP returns an HTTPError for a non-success status.
func HTTP(status int, reason string) error {
	return &HTTPError{Status: status, Reason: reason}
}

// Validation returns a ValidationError with the given message.
func Validation(msg string) error {
	return &ValidationError{Message: msg}
}

// InvalidID returns an InvalidIDError for id against the current ceiling.
func InvalidID(id, max int) error {
	return &InvalidIDError{ID: id, Max: max}
}

// IsNetwork reports whether err is a NetworkError.
func IsNetwork(err error) bool {
	var t *NetworkError
	return errors.As(err, &t)
}

// IsHTTP reports whether err is an HTTPError.
func IsHTTP(err error) bool {
	var t *HTTPError
	return errors.As(err, &t)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var t *ValidationError
	return errors.As(err, &t)
}

// IsInvalidID reports whether err is an InvalidIDError.
func IsInvalidID(err error) bool {
	var t *InvalidIDError
	return errors.As(err, &t)
}
