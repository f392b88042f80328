package core

import "context"

// Repository defines the contract for durably storing the trip collection.
// The collection is one serialized unit; implementations persist and load it
// whole, never per-field. Adhering to this interface keeps the store
// independent of the underlying medium (filesystem, memory, future backends).
type Repository interface {
	// LoadAll returns the full stored collection. An empty store, and any
	// content that fails to decode, both yield an empty slice: read problems
	// degrade to "no trips" and are logged by the implementation, never
	// surfaced as an error.
	LoadAll(ctx context.Context) ([]Trip, error)

	// SaveAll overwrites the entire stored collection. The write is atomic
	// from the caller's point of view: a partially written collection must
	// never be observable.
	SaveAll(ctx context.Context, trips []Trip) error

	// Add inserts a trip at the front of the collection (newest first).
	// Composed from LoadAll+SaveAll; a full read-modify-write cycle.
	Add(ctx context.Context, trip Trip) error

	// Replace swaps the stored trip with the same ID. Returns ErrNotFound
	// if no trip matches.
	Replace(ctx context.Context, trip Trip) error

	// Remove deletes the trip with the given ID. Returns ErrNotFound if no
	// trip matches.
	Remove(ctx context.Context, id string) error

	// Initialize ensures the underlying storage is ready (e.g. create the
	// data directory).
	Initialize(ctx context.Context) error
}

// EventType represents the kind of external change observed on the stored
// collection.
type EventType string

const (
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents an external change to the stored collection, e.g. another
// process rewriting the data file.
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer (and the lifecycle event contract).
func (e Event) String() string {
	return string(e.Type) + " " + e.ID
}

// Watchable defines an optional capability for repositories that can observe
// external changes to the stored collection.
type Watchable interface {
	// Watch emits an Event whenever the stored collection changes underneath
	// the process. The channel closes when ctx is done.
	Watch(ctx context.Context) (<-chan Event, error)
}
