package daygo

import (
	"log/slog"

	"github.com/myeongjunhyun/daygo/internal/platform"
	"github.com/myeongjunhyun/daygo/pkg/core"
)

// --- Types ---

// Trip is a public alias for the core trip entity.
type Trip = core.Trip

// Day is a public alias for one calendar day within a trip.
type Day = core.Day

// ContentItem is a public alias for a piece of day content.
type ContentItem = core.ContentItem

// ChecklistItem is a public alias for a trip-scoped to-do entry.
type ChecklistItem = core.ChecklistItem

// Store is a public alias for the trip store.
type Store = core.Store

// Event is a public alias for an external-change event.
type Event = core.Event

// CreateTripInput is a public alias for the trip creation payload.
type CreateTripInput = core.CreateTripInput

// CreateContentItemInput is a public alias for the content creation payload.
type CreateContentItemInput = core.CreateContentItemInput

// Sentinel errors, re-exported for errors.Is dispatch at call sites.
var (
	ErrNotFound    = core.ErrNotFound
	ErrValidation  = core.ErrValidation
	ErrPersistence = core.ErrPersistence
)

// --- Configuration ---

// Option defines a functional option for configuring daygo.
type Option = platform.Option

// WithLogger sets the logger for the store and adapter.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithFormat selects the on-disk format ("json" or "yaml").
func WithFormat(format string) Option {
	return platform.WithFormat(format)
}

// WithDocument overrides the base name of the trip document.
func WithDocument(name string) Option {
	return platform.WithDocument(name)
}

// WithMustExist ensures the data directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithForceTemp forces the data directory into the system temp dir (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithWatcherErrorHandler registers a callback for watch-loop errors.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates a trip Store backed by the filesystem adapter at path.
func New(path string, opts ...Option) (*core.Store, error) {
	return platform.New(path, opts...)
}

// Init initializes a repository explicitly, without constructing a store.
func Init(path string, opts ...Option) (core.Repository, error) {
	return platform.Init(path, opts...)
}

// --- Safety & Utils ---

// ResolveDataPath determines the actual data directory based on safety rules.
func ResolveDataPath(userPath string, forceTemp bool) string {
	return platform.ResolveDataPath(userPath, forceTemp)
}

// DaySpan returns the inclusive day count between two YYYY-MM-DD dates.
func DaySpan(start, end string) (int, error) {
	return core.DaySpan(start, end)
}
