package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Tisaghu/Work-Billing-Tracker/internal/model"
)

func TestRecordRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		chunk model.Chunk
	}{
		{"plain", model.Chunk{ID: 1, Date: time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC), Minutes: 60, Description: "Test 1"}},
		{"empty description", model.Chunk{ID: 7, Date: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), Minutes: 15}},
		{"delimiter in description", model.Chunk{ID: 12, Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Minutes: 90, Description: `review, "quoted", done`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.ChunkFromRecord(tt.chunk.Record())
			if err != nil {
				t.Fatalf("ChunkFromRecord: %v", err)
			}
			if got.ID != tt.chunk.ID || got.Minutes != tt.chunk.Minutes || got.Description != tt.chunk.Description {
				t.Errorf("round trip = %+v, want %+v", got, tt.chunk)
			}
			if !got.Date.Equal(tt.chunk.Date) {
				t.Errorf("round trip date = %v, want %v", got.Date, tt.chunk.Date)
			}
		})
	}
}

func TestChunkFromRecordLegacyThreeFields(t *testing.T) {
	c, err := model.ChunkFromRecord([]string{"2025-09-30", "45", "old entry"})
	if err != nil {
		t.Fatalf("ChunkFromRecord: %v", err)
	}
	if c.ID != 0 {
		t.Errorf("legacy ID = %d, want 0 placeholder", c.ID)
	}
	if c.Minutes != 45 {
		t.Errorf("Minutes = %d, want 45", c.Minutes)
	}
	if c.Description != "old entry" {
		t.Errorf("Description = %q, want %q", c.Description, "old entry")
	}
	want := time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)
	if !c.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", c.Date, want)
	}
}

func TestChunkFromRecordLegacyTwoFields(t *testing.T) {
	c, err := model.ChunkFromRecord([]string{"2025-09-30", "45"})
	if err != nil {
		t.Fatalf("ChunkFromRecord: %v", err)
	}
	if c.Description != "" {
		t.Errorf("Description = %q, want empty", c.Description)
	}
}

func TestChunkFromRecordBadFields(t *testing.T) {
	tests := []struct {
		name string
		rec  []string
	}{
		{"bad date", []string{"1", "not-a-date", "60", "x"}},
		{"bad minutes", []string{"1", "2025-09-30", "sixty", "x"}},
		{"bad id", []string{"one", "2025-09-30", "60", "x"}},
		{"too short", []string{"2025-09-30"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := model.ChunkFromRecord(tt.rec)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var pe *model.ParseError
			if !errors.As(err, &pe) {
				t.Errorf("error %v is not a *model.ParseError", err)
			}
		})
	}
}
