package model

import (
	"testing"
	"time"
)

func TestNewIngestDate_UTC(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	loc := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2025, 3, 12, 23, 30, 0, 0, loc)

	if got := NewIngestDate(now); got != IngestDate("2025-03-13") {
		t.Errorf("NewIngestDate() = %v, want 2025-03-13", got)
	}
}

func TestIngestDate_Validate(t *testing.T) {
	tests := []struct {
		name    string
		date    IngestDate
		wantErr bool
	}{
		{
			name:    "valid date",
			date:    IngestDate("2025-03-12"),
			wantErr: false,
		},
		{
			name:    "empty string",
			date:    IngestDate(""),
			wantErr: true,
		},
		{
			name:    "wrong layout",
			date:    IngestDate("12-03-2025"),
			wantErr: true,
		},
		{
			name:    "not a date",
			date:    IngestDate("2025-13-40"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.date.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRunID_Validate(t *testing.T) {
	tests := []struct {
		name    string
		runID   RunID
		wantErr bool
	}{
		{
			name:    "valid UUID",
			runID:   RunID("01890c24-905b-7122-b170-b60814e6ee06"),
			wantErr: false,
		},
		{
			name:    "empty string",
			runID:   RunID(""),
			wantErr: true,
		},
		{
			name:    "invalid UUID format",
			runID:   RunID("not-a-uuid"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.runID.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewRunID_IsValid(t *testing.T) {
	if err := NewRunID().Validate(); err != nil {
		t.Errorf("NewRunID() produced an invalid run ID: %v", err)
	}
}
