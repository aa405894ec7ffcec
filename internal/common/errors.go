// Package common defines sentinel errors shared by the store, service and
// presentation layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Lookup errors.
	ErrNotFound = errors.New("not found")

	// Input errors raised by presentation-level validation.
	ErrValidation = errors.New("validation error")

	// Snapshot import errors.
	ErrUnknownKey = errors.New("unknown storage key")
)
