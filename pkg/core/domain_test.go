package core

import "testing"

func TestCreateTripInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      CreateTripInput
		wantErr bool
	}{
		{
			name: "Valid Range",
			in:   CreateTripInput{Title: "Jeju", StartDate: "2026-03-10", EndDate: "2026-03-12"},
		},
		{
			name: "Single Day",
			in:   CreateTripInput{Title: "Day trip", StartDate: "2026-03-10", EndDate: "2026-03-10"},
		},
		{
			name:    "Missing Title",
			in:      CreateTripInput{StartDate: "2026-03-10", EndDate: "2026-03-12"},
			wantErr: true,
		},
		{
			name:    "Missing Dates",
			in:      CreateTripInput{Title: "Jeju"},
			wantErr: true,
		},
		{
			name:    "Wrong Layout",
			in:      CreateTripInput{Title: "Jeju", StartDate: "03/10/2026", EndDate: "2026-03-12"},
			wantErr: true,
		},
		{
			name:    "End Before Start",
			in:      CreateTripInput{Title: "Jeju", StartDate: "2026-03-12", EndDate: "2026-03-10"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateContentItemInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      CreateContentItemInput
		wantErr bool
	}{
		{
			name: "Photo",
			in:   CreateContentItemInput{Title: "beach.jpg", Type: ContentPhoto, URI: "file:///photos/beach.jpg"},
		},
		{
			name: "File",
			in:   CreateContentItemInput{Title: "tickets.pdf", Type: ContentFile, URI: "file:///docs/tickets.pdf"},
		},
		{
			name:    "Unknown Type",
			in:      CreateContentItemInput{Title: "x", Type: "video", URI: "file:///x"},
			wantErr: true,
		},
		{
			name:    "Missing URI",
			in:      CreateContentItemInput{Title: "x", Type: ContentPhoto},
			wantErr: true,
		},
		{
			name:    "Missing Title",
			in:      CreateContentItemInput{Type: ContentPhoto, URI: "file:///x"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
