package fs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/myeongjunhyun/daygo/pkg/core"
)

// DefaultDocument is the base name of the trip collection document.
// It mirrors the single fixed namespace key the app has always used.
const DefaultDocument = "trips"

// Repository implements core.Repository on the local filesystem. The entire
// trip collection lives in one serialized document under the data directory;
// every write replaces it via an atomic buffer-then-swap.
type Repository struct {
	Path   string
	config Config
	ser    Serializer

	mu            sync.RWMutex
	watcherActive bool
	lastSave      *time.Time
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path      string
	Document  string // base name of the collection document, default "trips"
	Format    string // "json" (default) or "yaml"
	MustExist bool   // require the data directory to already exist
	Logger    *slog.Logger

	// ErrorHandler receives runtime watcher failures, which are otherwise
	// only logged.
	ErrorHandler func(error)
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) (*Repository, error) {
	if config.Document == "" {
		config.Document = DefaultDocument
	}
	if config.Format == "" {
		config.Format = "json"
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	ser, ok := DefaultSerializers()[config.Format]
	if !ok {
		return nil, fmt.Errorf("unknown format: %s", config.Format)
	}

	return &Repository{
		Path:   config.Path,
		config: config,
		ser:    ser,
	}, nil
}

// Initialize ensures the data directory exists.
func (r *Repository) Initialize(ctx context.Context) error {
	if r.config.MustExist {
		info, err := os.Stat(r.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("data path does not exist: %s", r.Path)
		}
		if err != nil {
			return fmt.Errorf("failed to stat data path: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("data path is not a directory: %s", r.Path)
		}
		return nil
	}

	if err := os.MkdirAll(r.Path, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

// documentPath returns the full path of the collection document.
func (r *Repository) documentPath() string {
	return filepath.Join(r.Path, r.config.Document+r.ser.Ext())
}

// LoadAll reads the stored collection. A missing document means an empty
// collection. Unreadable or undecodable content also degrades to empty: the
// failure is logged, never surfaced, so a corrupt document can't brick the
// app on startup.
func (r *Repository) LoadAll(ctx context.Context) ([]core.Trip, error) {
	data, err := os.ReadFile(r.documentPath())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.config.Logger.Warn("trip document unreadable, starting empty",
				"path", r.documentPath(), "error", err)
		}
		return []core.Trip{}, nil
	}

	trips, err := r.ser.Decode(data)
	if err != nil {
		r.config.Logger.Warn("trip document corrupt, starting empty",
			"path", r.documentPath(), "error", err)
		return []core.Trip{}, nil
	}
	return trips, nil
}

// SaveAll overwrites the entire stored collection atomically.
func (r *Repository) SaveAll(ctx context.Context, trips []core.Trip) error {
	data, err := r.ser.Encode(trips)
	if err != nil {
		return fmt.Errorf("failed to serialize trips: %w", err)
	}

	if err := writeFileAtomic(r.documentPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write trips: %w", err)
	}

	r.recordSave()
	return nil
}

// Add inserts a trip at the front of the collection, newest first.
// A read-modify-write cycle over the whole document.
func (r *Repository) Add(ctx context.Context, trip core.Trip) error {
	trips, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}
	return r.SaveAll(ctx, append([]core.Trip{trip}, trips...))
}

// Replace swaps the stored trip carrying the same id.
func (r *Repository) Replace(ctx context.Context, trip core.Trip) error {
	trips, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range trips {
		if trips[i].ID == trip.ID {
			trips[i] = trip
			replaced = true
			break
		}
	}
	if !replaced {
		return fmt.Errorf("trip %s: %w", trip.ID, core.ErrNotFound)
	}
	return r.SaveAll(ctx, trips)
}

// Remove deletes the trip with the given id from the stored collection.
func (r *Repository) Remove(ctx context.Context, id string) error {
	trips, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}

	kept := trips[:0:0]
	for _, t := range trips {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(trips) {
		return fmt.Errorf("trip %s: %w", id, core.ErrNotFound)
	}
	return r.SaveAll(ctx, kept)
}

// Watch emits an event whenever the collection document changes on disk
// underneath the process (e.g. another client rewriting it). The channel
// closes when ctx is done.
func (r *Repository) Watch(ctx context.Context) (<-chan core.Event, error) {
	events := make(chan core.Event, 16)
	w := newWatchWorker(r, events)

	if err := w.Start(ctx); err != nil {
		return nil, err
	}

	go func() {
		<-ctx.Done()
		_ = w.Stop(context.Background())
		close(events)
	}()

	return events, nil
}

func (r *Repository) recordSave() {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.lastSave = &now
}

var _ core.Repository = (*Repository)(nil)
var _ core.Watchable = (*Repository)(nil)
