package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// IngestDate is the UTC calendar date stamped on every row of a run,
// in YYYY-MM-DD form. It is computed once at job start and doubles as
// the output partition value.
type IngestDate string

// NewIngestDate derives the ingest date from the given instant in UTC.
func NewIngestDate(now time.Time) IngestDate {
	return IngestDate(now.UTC().Format("2006-01-02"))
}

// Validate checks that the date is a well-formed YYYY-MM-DD string.
func (d IngestDate) Validate() error {
	if d == "" {
		return fmt.Errorf("ingest date cannot be empty")
	}
	if _, err := time.Parse("2006-01-02", string(d)); err != nil {
		return fmt.Errorf("ingest date must be YYYY-MM-DD: %w", err)
	}
	return nil
}

// String returns the date as a string.
func (d IngestDate) String() string {
	return string(d)
}

// RunID represents a run identifier from orchestration. The orchestrator
// passes its own; runs triggered by hand get a generated one.
type RunID string

// NewRunID generates a fresh run identifier.
func NewRunID() RunID {
	return RunID(uuid.New().String())
}

// Validate checks that the RunID is a valid UUID.
func (r RunID) Validate() error {
	if r == "" {
		return fmt.Errorf("run-id cannot be empty")
	}
	if _, err := uuid.Parse(string(r)); err != nil {
		return fmt.Errorf("run-id must be a valid UUID: %w", err)
	}
	return nil
}

// String returns the run ID as a string.
func (r RunID) String() string {
	return string(r)
}
