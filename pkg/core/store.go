package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Store is the single authoritative in-memory state container for the trip
// collection and the only path through which mutations occur. It orchestrates
// the Repository (durable persistence) and the itinerary deriver.
//
// Every mutating operation follows the same cycle: validate, locate, build an
// updated copy, persist, and only then replace the in-memory state. A failed
// persist therefore leaves the observable collection exactly as it was before
// the call.
//
// The mutex guards the in-memory snapshot only; it is not held across
// persistence I/O. Two operations started concurrently against the same trip
// each run their own read-modify-write cycle, and the later persist wins at
// whole-trip granularity. Acceptable for a single-user local collection.
type Store struct {
	repo   Repository
	logger *slog.Logger

	mu        sync.RWMutex
	trips     []Trip
	currentID string
	loading   bool
	lastErr   error

	// Injection points for deterministic tests.
	newID IDFunc
	now   func() time.Time
}

// NewStore creates a Store on top of the given repository.
// A nil logger falls back to slog.Default().
func NewStore(repo Repository, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		repo:   repo,
		logger: logger,
		newID:  uuid.NewString,
		now:    time.Now,
	}
}

// Trips returns a deep copy of the current collection. Callers may mutate the
// result freely; only Store operations change the authoritative state.
func (s *Store) Trips() []Trip {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Trip, 0, len(s.trips))
	for _, t := range s.trips {
		out = append(out, cloneTrip(t))
	}
	return out
}

// CurrentTrip returns a copy of the selected trip, if any.
func (s *Store) CurrentTrip() (Trip, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.currentID == "" {
		return Trip{}, false
	}
	for _, t := range s.trips {
		if t.ID == s.currentID {
			return cloneTrip(t), true
		}
	}
	return Trip{}, false
}

// Loading reports whether an operation is in flight. The flag is
// last-writer-wins across overlapping operations, not a counter.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the error recorded by the most recent operation, or nil.
// Operations also return their errors directly; the slot exists for observers
// (e.g. a UI binding) that poll state rather than call sites.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// LoadTrips replaces the in-memory collection with the persisted one.
// On failure the existing collection is kept: stale-but-present beats empty.
func (s *Store) LoadTrips(ctx context.Context) error {
	s.begin()
	trips, err := s.repo.LoadAll(ctx)
	if err != nil {
		return s.finish(fmt.Errorf("load trips: %w: %v", ErrPersistence, err))
	}

	s.mu.Lock()
	s.trips = trips
	s.mu.Unlock()
	return s.finish(nil)
}

// SetCurrentTrip selects the trip the UI is focused on. An unknown id clears
// the selection and reports ErrNotFound.
func (s *Store) SetCurrentTrip(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.trips {
		if t.ID == id {
			s.currentID = id
			return nil
		}
	}
	s.currentID = ""
	return fmt.Errorf("set current trip: trip %s: %w", id, ErrNotFound)
}

// AddTrip creates a trip with a derived day-by-day itinerary and an empty
// checklist, persists it, then reloads the full collection from the adapter so
// the in-memory state matches what was durably written.
func (s *Store) AddTrip(ctx context.Context, in CreateTripInput) (Trip, error) {
	s.begin()
	if err := in.Validate(); err != nil {
		return Trip{}, s.finish(fmt.Errorf("add trip: %w: %v", ErrValidation, err))
	}

	tripID := s.newID()
	days, err := BuildDays(s.newID, tripID, in.StartDate, in.EndDate)
	if err != nil {
		return Trip{}, s.finish(fmt.Errorf("add trip: %w: %v", ErrValidation, err))
	}

	ts := s.timestamp()
	trip := Trip{
		ID:        tripID,
		Title:     in.Title,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		CreatedAt: ts,
		UpdatedAt: ts,
		Days:      days,
		Checklist: []ChecklistItem{},
	}

	if err := s.repo.Add(ctx, trip); err != nil {
		return Trip{}, s.finish(wrapPersist("add trip", err))
	}

	trips, err := s.repo.LoadAll(ctx)
	if err != nil {
		return Trip{}, s.finish(fmt.Errorf("add trip: reload: %w: %v", ErrPersistence, err))
	}

	s.mu.Lock()
	s.trips = trips
	s.mu.Unlock()
	return trip, s.finish(nil)
}

// AddContentItem attaches a new photo or file reference to a day. New items
// are prepended: the day reads newest first.
func (s *Store) AddContentItem(ctx context.Context, tripID, dayID string, in CreateContentItemInput) (ContentItem, error) {
	s.begin()
	if err := in.Validate(); err != nil {
		return ContentItem{}, s.finish(fmt.Errorf("add content item: %w: %v", ErrValidation, err))
	}

	trip, ok := s.tripByID(tripID)
	if !ok {
		return ContentItem{}, s.finish(fmt.Errorf("add content item: trip %s: %w", tripID, ErrNotFound))
	}
	di := dayIndex(trip, dayID)
	if di < 0 {
		return ContentItem{}, s.finish(fmt.Errorf("add content item: day %s: %w", dayID, ErrNotFound))
	}

	item := ContentItem{
		ID:        s.newID(),
		DayID:     dayID,
		Title:     in.Title,
		Type:      in.Type,
		URI:       in.URI,
		CreatedAt: s.timestamp(),
	}
	trip.Days[di].Items = append([]ContentItem{item}, trip.Days[di].Items...)
	trip.UpdatedAt = s.timestamp()

	if err := s.persistTrip(ctx, "add content item", trip); err != nil {
		return ContentItem{}, s.finish(err)
	}
	return item, s.finish(nil)
}

// UpdateContentItem overwrites the description memo of an item. No other
// field of a content item is mutable after creation.
func (s *Store) UpdateContentItem(ctx context.Context, tripID, dayID, itemID, description string) error {
	s.begin()
	trip, ok := s.tripByID(tripID)
	if !ok {
		return s.finish(fmt.Errorf("update content item: trip %s: %w", tripID, ErrNotFound))
	}
	di := dayIndex(trip, dayID)
	if di < 0 {
		return s.finish(fmt.Errorf("update content item: day %s: %w", dayID, ErrNotFound))
	}

	updated := false
	for i := range trip.Days[di].Items {
		if trip.Days[di].Items[i].ID == itemID {
			trip.Days[di].Items[i].Description = description
			updated = true
			break
		}
	}
	if !updated {
		return s.finish(fmt.Errorf("update content item: item %s: %w", itemID, ErrNotFound))
	}
	trip.UpdatedAt = s.timestamp()

	return s.finish(s.persistTrip(ctx, "update content item", trip))
}

// DeleteContentItem removes an item from its day.
func (s *Store) DeleteContentItem(ctx context.Context, tripID, dayID, itemID string) error {
	s.begin()
	trip, ok := s.tripByID(tripID)
	if !ok {
		return s.finish(fmt.Errorf("delete content item: trip %s: %w", tripID, ErrNotFound))
	}
	di := dayIndex(trip, dayID)
	if di < 0 {
		return s.finish(fmt.Errorf("delete content item: day %s: %w", dayID, ErrNotFound))
	}

	items := trip.Days[di].Items
	kept := items[:0:0]
	for _, it := range items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return s.finish(fmt.Errorf("delete content item: item %s: %w", itemID, ErrNotFound))
	}
	trip.Days[di].Items = kept
	trip.UpdatedAt = s.timestamp()

	return s.finish(s.persistTrip(ctx, "delete content item", trip))
}

// AddChecklistItem appends a new unchecked entry to the trip checklist.
// Trips persisted before the checklist field existed carry a nil collection;
// append treats that as empty.
func (s *Store) AddChecklistItem(ctx context.Context, tripID, text string) (ChecklistItem, error) {
	s.begin()
	if err := validation.Validate(text, validation.Required); err != nil {
		return ChecklistItem{}, s.finish(fmt.Errorf("add checklist item: text: %w: %v", ErrValidation, err))
	}

	trip, ok := s.tripByID(tripID)
	if !ok {
		return ChecklistItem{}, s.finish(fmt.Errorf("add checklist item: trip %s: %w", tripID, ErrNotFound))
	}

	entry := ChecklistItem{
		ID:        s.newID(),
		TripID:    tripID,
		Text:      text,
		IsChecked: false,
		CreatedAt: s.timestamp(),
	}
	trip.Checklist = append(trip.Checklist, entry)
	trip.UpdatedAt = s.timestamp()

	if err := s.persistTrip(ctx, "add checklist item", trip); err != nil {
		return ChecklistItem{}, s.finish(err)
	}
	return entry, s.finish(nil)
}

// ToggleChecklistItem flips the checked state of an entry.
func (s *Store) ToggleChecklistItem(ctx context.Context, tripID, itemID string) error {
	s.begin()
	trip, ok := s.tripByID(tripID)
	if !ok {
		return s.finish(fmt.Errorf("toggle checklist item: trip %s: %w", tripID, ErrNotFound))
	}

	toggled := false
	for i := range trip.Checklist {
		if trip.Checklist[i].ID == itemID {
			trip.Checklist[i].IsChecked = !trip.Checklist[i].IsChecked
			toggled = true
			break
		}
	}
	if !toggled {
		return s.finish(fmt.Errorf("toggle checklist item: item %s: %w", itemID, ErrNotFound))
	}
	trip.UpdatedAt = s.timestamp()

	return s.finish(s.persistTrip(ctx, "toggle checklist item", trip))
}

// RemoveChecklistItem deletes an entry from the trip checklist.
func (s *Store) RemoveChecklistItem(ctx context.Context, tripID, itemID string) error {
	s.begin()
	trip, ok := s.tripByID(tripID)
	if !ok {
		return s.finish(fmt.Errorf("remove checklist item: trip %s: %w", tripID, ErrNotFound))
	}

	kept := trip.Checklist[:0:0]
	for _, c := range trip.Checklist {
		if c.ID != itemID {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(trip.Checklist) {
		return s.finish(fmt.Errorf("remove checklist item: item %s: %w", itemID, ErrNotFound))
	}
	trip.Checklist = kept
	trip.UpdatedAt = s.timestamp()

	return s.finish(s.persistTrip(ctx, "remove checklist item", trip))
}

// SetCoverImage sets the cover image reference of a trip. An empty uri clears
// it back to the default cover.
func (s *Store) SetCoverImage(ctx context.Context, tripID, uri string) error {
	s.begin()
	trip, ok := s.tripByID(tripID)
	if !ok {
		return s.finish(fmt.Errorf("set cover image: trip %s: %w", tripID, ErrNotFound))
	}

	trip.CoverImageUri = uri
	trip.UpdatedAt = s.timestamp()

	return s.finish(s.persistTrip(ctx, "set cover image", trip))
}

// DeleteTrip removes a trip and, implicitly, every day, content item and
// checklist entry embedded in it. The current selection is cleared only when
// the deleted trip is the selected one.
func (s *Store) DeleteTrip(ctx context.Context, tripID string) error {
	s.begin()
	if _, ok := s.tripByID(tripID); !ok {
		return s.finish(fmt.Errorf("delete trip: trip %s: %w", tripID, ErrNotFound))
	}

	if err := s.repo.Remove(ctx, tripID); err != nil {
		return s.finish(wrapPersist("delete trip", err))
	}

	s.mu.Lock()
	kept := s.trips[:0:0]
	for _, t := range s.trips {
		if t.ID != tripID {
			kept = append(kept, t)
		}
	}
	s.trips = kept
	if s.currentID == tripID {
		s.currentID = ""
	}
	s.mu.Unlock()
	return s.finish(nil)
}

// UpdateTripDates retitles a trip and, when the date range actually changed,
// regenerates the itinerary from scratch. Regeneration is destructive: every
// day gets a fresh id and empty items. The checklist survives either way.
// A call with unchanged dates touches nothing but the title and UpdatedAt.
func (s *Store) UpdateTripDates(ctx context.Context, tripID, title, startDate, endDate string) error {
	s.begin()
	in := CreateTripInput{Title: title, StartDate: startDate, EndDate: endDate}
	if err := in.Validate(); err != nil {
		return s.finish(fmt.Errorf("update trip dates: %w: %v", ErrValidation, err))
	}

	trip, ok := s.tripByID(tripID)
	if !ok {
		return s.finish(fmt.Errorf("update trip dates: trip %s: %w", tripID, ErrNotFound))
	}

	if startDate != trip.StartDate || endDate != trip.EndDate {
		days, err := BuildDays(s.newID, tripID, startDate, endDate)
		if err != nil {
			return s.finish(fmt.Errorf("update trip dates: %w: %v", ErrValidation, err))
		}
		trip.Days = days
		trip.StartDate = startDate
		trip.EndDate = endDate
	}
	trip.Title = title
	trip.UpdatedAt = s.timestamp()

	return s.finish(s.persistTrip(ctx, "update trip dates", trip))
}

// Watch surfaces external-change events from the repository, if it supports
// watching. Callers typically respond by invoking LoadTrips.
func (s *Store) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	return w.Watch(ctx)
}

// --- internals ---

func (s *Store) begin() {
	s.mu.Lock()
	s.loading = true
	s.lastErr = nil
	s.mu.Unlock()
}

// finish records the outcome, drops the loading flag and passes err through.
func (s *Store) finish(err error) error {
	s.mu.Lock()
	s.loading = false
	s.lastErr = err
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("store operation failed", "error", err)
	}
	return err
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

// tripByID returns a deep copy of the trip, safe to mutate before persist.
func (s *Store) tripByID(id string) (Trip, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.trips {
		if t.ID == id {
			return cloneTrip(t), true
		}
	}
	return Trip{}, false
}

// persistTrip durably replaces the trip, then swaps it into the in-memory
// collection. Memory is only touched after the persist succeeds.
func (s *Store) persistTrip(ctx context.Context, op string, trip Trip) error {
	if err := s.repo.Replace(ctx, trip); err != nil {
		return wrapPersist(op, err)
	}

	s.mu.Lock()
	for i := range s.trips {
		if s.trips[i].ID == trip.ID {
			s.trips[i] = trip
			break
		}
	}
	s.mu.Unlock()
	return nil
}

func wrapPersist(op string, err error) error {
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %v", op, ErrPersistence, err)
}

func dayIndex(trip Trip, dayID string) int {
	for i, d := range trip.Days {
		if d.ID == dayID {
			return i
		}
	}
	return -1
}

func cloneTrip(t Trip) Trip {
	c := t
	c.Days = make([]Day, len(t.Days))
	for i, d := range t.Days {
		cd := d
		// make+copy keeps an empty Items slice non-nil, so the persisted
		// document always carries "items": [] rather than null.
		cd.Items = make([]ContentItem, len(d.Items))
		copy(cd.Items, d.Items)
		c.Days[i] = cd
	}
	if t.Checklist != nil {
		c.Checklist = append([]ChecklistItem(nil), t.Checklist...)
	}
	return c
}
