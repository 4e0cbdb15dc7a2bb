package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound matches 404 responses via errors.Is.
	ErrNotFound = errors.New("room not found")

	// ErrUnsavedRoom is returned when an operation that needs a persisted
	// record is attempted on one still carrying the "new" sentinel id.
	ErrUnsavedRoom = errors.New("room has not been saved yet")

	// ErrValidation is returned when required fields are missing; nothing
	// reaches the network in that case.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateFacility is returned when a facility is already present
	// verbatim in the list.
	ErrDuplicateFacility = errors.New("facility already in list")
)

// StatusError reports a non-2xx response from the backend.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server error (status %d)", e.StatusCode)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}
