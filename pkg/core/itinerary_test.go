package core

import (
	"fmt"
	"testing"
)

func TestDaySpan(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		want    int
		wantErr bool
	}{
		{name: "Single Day", start: "2026-03-10", end: "2026-03-10", want: 1},
		{name: "Three Days", start: "2026-03-10", end: "2026-03-12", want: 3},
		{name: "Across Month Boundary", start: "2026-01-30", end: "2026-02-02", want: 4},
		{name: "Across Year Boundary", start: "2025-12-30", end: "2026-01-02", want: 4},
		// Spans the US/EU spring DST switch; calendar-day math must not
		// drop a day to a 23-hour artifact.
		{name: "Across DST Switch", start: "2026-03-07", end: "2026-03-09", want: 3},
		{name: "Leap Day", start: "2028-02-28", end: "2028-03-01", want: 3},
		{name: "Full Week", start: "2026-07-01", end: "2026-07-07", want: 7},
		{name: "Bad Start", start: "10-03-2026", end: "2026-03-12", wantErr: true},
		{name: "Bad End", start: "2026-03-10", end: "not-a-date", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DaySpan(tt.start, tt.end)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DaySpan() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got != tt.want {
				t.Errorf("DaySpan(%s, %s) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestBuildDays(t *testing.T) {
	gen := sequentialIDs("day")

	days, err := BuildDays(gen, "trip-1", "2026-03-10", "2026-03-12")
	if err != nil {
		t.Fatalf("BuildDays failed: %v", err)
	}

	if len(days) != 3 {
		t.Fatalf("Expected 3 days, got %d", len(days))
	}

	wantDates := []string{"2026-03-10", "2026-03-11", "2026-03-12"}
	for i, d := range days {
		if d.DayNumber != i+1 {
			t.Errorf("days[%d].DayNumber = %d, want %d", i, d.DayNumber, i+1)
		}
		if d.Date != wantDates[i] {
			t.Errorf("days[%d].Date = %s, want %s", i, d.Date, wantDates[i])
		}
		if d.TripID != "trip-1" {
			t.Errorf("days[%d].TripID = %s, want trip-1", i, d.TripID)
		}
		if d.Items == nil || len(d.Items) != 0 {
			t.Errorf("days[%d].Items not empty: %v", i, d.Items)
		}
	}
}

func TestBuildDaysRegenerationUsesFreshIDs(t *testing.T) {
	gen := sequentialIDs("day")

	first, err := BuildDays(gen, "trip-1", "2026-03-10", "2026-03-11")
	if err != nil {
		t.Fatalf("BuildDays failed: %v", err)
	}
	second, err := BuildDays(gen, "trip-1", "2026-03-10", "2026-03-11")
	if err != nil {
		t.Fatalf("BuildDays failed: %v", err)
	}

	seen := map[string]bool{}
	for _, d := range first {
		seen[d.ID] = true
	}
	for _, d := range second {
		if seen[d.ID] {
			t.Errorf("regenerated day reused id %s", d.ID)
		}
	}
}

// sequentialIDs returns a deterministic IDFunc for tests.
func sequentialIDs(prefix string) IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}
