package platform

import (
	"context"
	"log/slog"

	"github.com/myeongjunhyun/daygo/pkg/adapters/fs"
	"github.com/myeongjunhyun/daygo/pkg/core"
)

// New wires a Store to its repository based on the provided options.
//
//	store, err := daygo.New("~/.daygo", daygo.WithLogger(logger))
func New(path string, opts ...Option) (*core.Store, error) {
	repo, err := Init(path, opts...)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return core.NewStore(repo, o.logger), nil
}

// Init initializes a repository explicitly, without constructing a store.
func Init(path string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	// 1. Check for injected repository
	if o.repository != nil {
		return o.repository, nil
	}

	// 2. Build the filesystem adapter
	repo, err := initFS(path, o)
	if err != nil {
		return nil, err
	}

	// 3. Run Initialization
	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}

	return repo, nil
}

// initFS handles the initialization logic for the filesystem adapter.
func initFS(path string, o *options) (core.Repository, error) {
	format, _ := o.config["format"].(string)
	document, _ := o.config["document"].(string)
	mustExist, _ := o.config["must_exist"].(bool)
	forceTemp, _ := o.config["temp_dir"].(bool)
	errorHandler, _ := o.config["watcher_error_handler"].(func(error))

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	return fs.NewRepository(fs.Config{
		Path:         ResolveDataPath(path, forceTemp),
		Document:     document,
		Format:       format,
		MustExist:    mustExist,
		Logger:       logger,
		ErrorHandler: errorHandler,
	})
}
