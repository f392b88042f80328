package core

import "time"

// DateLayout is the calendar-date format used across the persisted document.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string to midnight UTC. Normalizing to UTC
// midnight keeps day arithmetic immune to DST and fractional-day artifacts.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DaySpan returns the inclusive day count between two calendar dates,
// e.g. 2026-03-10..2026-03-12 spans 3 days. The result for end < start is
// unspecified; Store validation rejects that ordering before it gets here.
func DaySpan(start, end string) (int, error) {
	s, err := ParseDate(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return 0, err
	}
	return int(e.Sub(s).Hours()/24) + 1, nil
}

// IDFunc produces a fresh unique identifier.
type IDFunc func() string

// BuildDays derives the day-by-day itinerary skeleton for a trip: one Day per
// calendar date in [start, end], DayNumber 1..N, empty Items.
//
// Every call draws fresh ids from newID, including regeneration after a date
// change. Old Day ids are never reused: content that referenced them is being
// discarded, and a recycled id would resurrect those references.
func BuildDays(newID IDFunc, tripID, start, end string) ([]Day, error) {
	span, err := DaySpan(start, end)
	if err != nil {
		return nil, err
	}
	first, err := ParseDate(start)
	if err != nil {
		return nil, err
	}

	days := make([]Day, 0, span)
	for i := 0; i < span; i++ {
		days = append(days, Day{
			ID:        newID(),
			TripID:    tripID,
			DayNumber: i + 1,
			Date:      first.AddDate(0, 0, i).Format(DateLayout),
			Items:     []ContentItem{},
		})
	}
	return days, nil
}
