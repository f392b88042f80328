// Package daygo is the Composition Root for the daygo travel journal.
//
// It connects the core trip/day/content state management (Domain Layer) with
// the local persistence adapter (Persistence Layer) using the Hexagonal
// Architecture pattern.
//
// Philosophy:
//
// daygo treats a user's travel journal as a single local document: trips own
// a derived day-by-day itinerary, days accumulate content references, trips
// carry a checklist. Everything is persisted whole, atomically, on every
// mutation. There is no server and no sync; the filesystem is the database.
//
// Features:
//
//   - **Derived itineraries**: the day skeleton is computed from the trip's
//     date range and regenerated destructively when the range changes.
//   - **Atomic persistence**: the whole collection is swapped into place via
//     temp-file-then-rename; a partial document is never observable.
//   - **Lossy-degrade loads**: a missing or corrupt document reads as an
//     empty collection instead of an error.
//   - **External-change watch**: fsnotify-based events when another process
//     rewrites the document.
//   - **Extensible**: any backend can replace the filesystem via
//     core.Repository.
//
// Usage:
//
//	store, err := daygo.New("~/.daygo",
//		daygo.WithLogger(logger),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := store.LoadTrips(ctx); err != nil {
//		log.Fatal(err)
//	}
//
//	trip, err := store.AddTrip(ctx, daygo.CreateTripInput{
//		Title:     "Jeju",
//		StartDate: "2026-03-10",
//		EndDate:   "2026-03-12",
//	})
package daygo
