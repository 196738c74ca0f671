package job

import (
	"fmt"
	"strings"

	"github.com/healthetl/ingest-go/internal/model"
)

// Config holds the resolved parameters of one run. It is built once in main
// and never mutated.
type Config struct {
	RawBucket     string
	RawPrefix     string
	CuratedBucket string
	CuratedPrefix string
	ObjectKey     string // optional: single-object mode when set

	RunID      model.RunID
	IngestDate model.IngestDate
}

// Validate checks that all required parameters are present and well-formed.
func (c Config) Validate() error {
	if c.RawBucket == "" {
		return fmt.Errorf("raw bucket is required")
	}
	if c.RawPrefix == "" {
		return fmt.Errorf("raw prefix is required")
	}
	if c.CuratedBucket == "" {
		return fmt.Errorf("curated bucket is required")
	}
	if c.CuratedPrefix == "" {
		return fmt.Errorf("curated prefix is required")
	}
	if err := c.RunID.Validate(); err != nil {
		return err
	}
	return c.IngestDate.Validate()
}

// SourceKind distinguishes the two input-selection policies.
type SourceKind int

const (
	// SourcePrefixScan reads every object under the raw prefix.
	SourcePrefixScan SourceKind = iota
	// SourceSingleObject reads exactly the object named by the trigger.
	SourceSingleObject
)

// Source is the input selection for a run, resolved once from Config.
type Source struct {
	Kind   SourceKind
	Bucket string
	Prefix string // set in prefix-scan mode
	Key    string // set in single-object mode
}

// NewSource resolves the input selection: a non-empty object key means the
// run was triggered for that one object, otherwise the whole prefix is read.
func NewSource(cfg Config) Source {
	if cfg.ObjectKey != "" {
		return Source{Kind: SourceSingleObject, Bucket: cfg.RawBucket, Key: cfg.ObjectKey}
	}
	return Source{Kind: SourcePrefixScan, Bucket: cfg.RawBucket, Prefix: cfg.RawPrefix}
}

// isCSVKey reports whether the object key names a CSV, case-insensitively.
func isCSVKey(key string) bool {
	return strings.HasSuffix(strings.ToLower(key), ".csv")
}

// Result describes what a run did.
type Result struct {
	Skipped    bool
	SkippedKey string

	Destination   string // s3://<curated-bucket>/<curated-prefix>
	PartitionDate model.IngestDate
	ObjectsRead   int
	RowsWritten   int64
}

// ReadFailure marks errors from the read side: source unreachable, missing,
// or empty. Maps to exitcode.ReadError.
type ReadFailure struct {
	Err error
}

func (e *ReadFailure) Error() string {
	return fmt.Sprintf("read: %v", e.Err)
}

func (e *ReadFailure) Unwrap() error {
	return e.Err
}

// WriteFailure marks errors from the copy/commit side. Maps to
// exitcode.WriteError.
type WriteFailure struct {
	Err error
}

func (e *WriteFailure) Error() string {
	return fmt.Sprintf("write: %v", e.Err)
}

func (e *WriteFailure) Unwrap() error {
	return e.Err
}
