package core

import "errors"

// Common errors. Store operations wrap these with context, so callers can
// dispatch on errors.Is regardless of which entity was involved.
var (
	// ErrNotFound reports a trip, day, item or checklist entry lookup miss.
	// The failing operation performs no mutation.
	ErrNotFound = errors.New("not found")

	// ErrValidation reports a rejected input payload.
	ErrValidation = errors.New("validation failed")

	// ErrPersistence reports a failed write to durable storage. In-memory
	// state is only replaced after a successful persist, so the collection
	// observed before the call is still intact.
	ErrPersistence = errors.New("persistence failed")
)
