package core

import "github.com/google/uuid"

// NewID generates a new unique identifier for conversions.
//
// This function creates a UUID-based unique identifier that can be used
// for conversion tracking and log correlation throughout the library.
//
// Returns a string representation of a new UUID.
func NewID() string { return uuid.NewString() }
