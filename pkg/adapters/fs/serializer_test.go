package fs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myeongjunhyun/daygo/pkg/core"
)

// fixtureTrips builds a nonempty collection exercising every nested level.
func fixtureTrips() []core.Trip {
	return []core.Trip{
		{
			ID:        "trip-1",
			Title:     "Jeju",
			StartDate: "2026-03-10",
			EndDate:   "2026-03-11",
			CreatedAt: "2026-03-01T12:00:00Z",
			UpdatedAt: "2026-03-02T08:30:00Z",
			Days: []core.Day{
				{
					ID: "day-1", TripID: "trip-1", DayNumber: 1, Date: "2026-03-10",
					Items: []core.ContentItem{
						{
							ID: "item-1", DayID: "day-1", Title: "beach.jpg",
							Type: core.ContentPhoto, URI: "file:///photos/beach.jpg",
							Description: "sunset", CreatedAt: "2026-03-10T19:02:11Z",
						},
					},
				},
				{
					ID: "day-2", TripID: "trip-1", DayNumber: 2, Date: "2026-03-11",
					Items: []core.ContentItem{},
				},
			},
			Checklist: []core.ChecklistItem{
				{ID: "chk-1", TripID: "trip-1", Text: "passport", IsChecked: true, CreatedAt: "2026-03-01T12:05:00Z"},
			},
			CoverImageUri: "file:///covers/jeju.jpg",
		},
		{
			ID:        "trip-2",
			Title:     "Busan",
			StartDate: "2026-05-01",
			EndDate:   "2026-05-01",
			CreatedAt: "2026-04-20T09:00:00Z",
			UpdatedAt: "2026-04-20T09:00:00Z",
			Days: []core.Day{
				{ID: "day-3", TripID: "trip-2", DayNumber: 1, Date: "2026-05-01", Items: []core.ContentItem{}},
			},
		},
	}
}

func TestSerializerRoundTrip(t *testing.T) {
	for name, ser := range DefaultSerializers() {
		t.Run(name, func(t *testing.T) {
			trips := fixtureTrips()

			data, err := ser.Encode(trips)
			require.NoError(t, err)

			got, err := ser.Decode(data)
			require.NoError(t, err)
			assert.Equal(t, trips, got)
		})
	}
}

func TestSerializerEmptyCollection(t *testing.T) {
	for name, ser := range DefaultSerializers() {
		t.Run(name, func(t *testing.T) {
			data, err := ser.Encode(nil)
			require.NoError(t, err)

			got, err := ser.Decode(data)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestSerializerRejectsGarbage(t *testing.T) {
	for name, ser := range DefaultSerializers() {
		t.Run(name, func(t *testing.T) {
			_, err := ser.Decode([]byte("{{{definitely not a document"))
			assert.Error(t, err)
		})
	}
}
