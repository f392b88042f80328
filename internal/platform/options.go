package platform

import (
	"log/slog"

	"github.com/myeongjunhyun/daygo/pkg/core"
)

// options holds the internal configuration for the daygo store.
type options struct {
	repository core.Repository
	logger     *slog.Logger
	config     map[string]interface{}
}

// Option defines a functional option for configuring daygo.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		repository: nil,
		logger:     nil,
		config:     make(map[string]interface{}),
	}
}

// WithLogger sets the logger for the store and adapter.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. a memory
// fake). If provided, the default filesystem adapter is skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithFormat selects the on-disk format of the trip document ("json" or
// "yaml"). Defaults to "json".
func WithFormat(format string) Option {
	return func(o *options) {
		o.config["format"] = format
	}
}

// WithDocument overrides the base name of the trip document. Defaults to
// "trips".
func WithDocument(name string) Option {
	return func(o *options) {
		o.config["document"] = name
	}
}

// WithMustExist ensures the data directory must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.config["must_exist"] = must
	}
}

// WithForceTemp forces the data directory into the system temp dir
// (useful for testing and demos).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.config["temp_dir"] = force
	}
}

// WithWatcherErrorHandler registers a callback for errors occurring during
// the watch loop, which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.config["watcher_error_handler"] = fn
	}
}
