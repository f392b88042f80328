// Trip is the central entity of the domain.
package core

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ContentType is the closed tag for a piece of day content.
type ContentType string

const (
	ContentPhoto ContentType = "photo"
	ContentFile  ContentType = "file"
)

// Trip is the central entity of the domain: a travel plan with a date range,
// a derived day-by-day itinerary and a trip-scoped checklist.
//
// Field names follow the persisted document format, so a collection written by
// an older client round-trips unchanged.
type Trip struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	StartDate string `json:"startDate" yaml:"startDate"`
	EndDate   string `json:"endDate" yaml:"endDate"`
	CreatedAt string `json:"createdAt" yaml:"createdAt"`
	UpdatedAt string `json:"updatedAt" yaml:"updatedAt"`

	// Days is ordered by DayNumber ascending, contiguous from 1..N where N is
	// the inclusive day span of [StartDate, EndDate].
	Days []Day `json:"days" yaml:"days"`

	// Checklist may be absent on documents written before the field existed.
	// All operations treat nil as empty.
	Checklist []ChecklistItem `json:"checklist,omitempty" yaml:"checklist,omitempty"`

	// CoverImageUri is an opaque reference to a cover image. Empty means no
	// custom cover; the UI renders a default.
	CoverImageUri string `json:"coverImageUri,omitempty" yaml:"coverImageUri,omitempty"`
}

// Day is one calendar day within a trip. Trip exclusively owns its Days;
// TripID is a lookup aid, never an ownership edge.
type Day struct {
	ID        string        `json:"id" yaml:"id"`
	TripID    string        `json:"tripId" yaml:"tripId"`
	DayNumber int           `json:"dayNumber" yaml:"dayNumber"`
	Date      string        `json:"date" yaml:"date"`
	Items     []ContentItem `json:"items" yaml:"items"`
}

// ContentItem is a photo or file attached to a Day. The URI is stored verbatim;
// acquiring and copying the underlying blob is the platform layer's concern.
// Description is the only field that remains mutable after creation.
type ContentItem struct {
	ID          string      `json:"id" yaml:"id"`
	DayID       string      `json:"dayId" yaml:"dayId"`
	Title       string      `json:"title" yaml:"title"`
	Type        ContentType `json:"type" yaml:"type"`
	URI         string      `json:"uri" yaml:"uri"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	CreatedAt   string      `json:"createdAt" yaml:"createdAt"`
}

// ChecklistItem is a trip-scoped to-do entry. Text is immutable once created;
// only IsChecked toggles.
type ChecklistItem struct {
	ID        string `json:"id" yaml:"id"`
	TripID    string `json:"tripId" yaml:"tripId"`
	Text      string `json:"text" yaml:"text"`
	IsChecked bool   `json:"isChecked" yaml:"isChecked"`
	CreatedAt string `json:"createdAt" yaml:"createdAt"`
}

// CreateTripInput is the payload for Store.AddTrip.
type CreateTripInput struct {
	Title     string
	StartDate string
	EndDate   string
}

// Validate checks the payload before any trip is constructed.
// Dates must use the YYYY-MM-DD layout and StartDate must not be after EndDate.
func (in CreateTripInput) Validate() error {
	if err := validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required),
		validation.Field(&in.StartDate, validation.Required, validation.Date(DateLayout)),
		validation.Field(&in.EndDate, validation.Required, validation.Date(DateLayout)),
	); err != nil {
		return err
	}
	// Lexicographic comparison is date order for the fixed YYYY-MM-DD layout.
	if in.EndDate < in.StartDate {
		return validation.Errors{
			"EndDate": validation.NewError("validation_date_order", "endDate must not be before startDate"),
		}
	}
	return nil
}

// CreateContentItemInput is the payload for Store.AddContentItem.
// ID, DayID and CreatedAt are assigned by the store.
type CreateContentItemInput struct {
	Title string
	Type  ContentType
	URI   string
}

// Validate checks the payload before an item is constructed.
func (in CreateContentItemInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required),
		validation.Field(&in.Type, validation.Required, validation.In(ContentPhoto, ContentFile)),
		validation.Field(&in.URI, validation.Required),
	)
}
