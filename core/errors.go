package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSource is returned when a value matches none of the
	// recognized Source variants.
	ErrInvalidSource = errors.New("invalid source type")

	// ErrMalformedText is returned when decode input is not valid text for
	// the active alphabet (bad base64 padding, odd-length hex, and so on).
	ErrMalformedText = errors.New("malformed encoded text")

	// ErrMissingName is returned when an artifact-producing operation is
	// invoked without the required artifact name.
	ErrMissingName = errors.New("artifact name is required")
)

// AcquisitionError reports a failed byte acquisition for a single source.
// Kind names the source variant that failed ("file", "url", "handle",
// "stream"); Err carries the underlying cause and is exposed via Unwrap so
// callers can match with errors.Is / errors.As.
type AcquisitionError struct {
	Kind string
	Err  error
}

// Error implements the error interface.
func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("acquire %s: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying cause.
func (e *AcquisitionError) Unwrap() error { return e.Err }
