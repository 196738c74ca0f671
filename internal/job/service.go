package job

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/healthetl/ingest-go/internal/storage"
)

// CopyRequest is one engine invocation: read these CSVs, stamp the ingest
// date, write Parquet partitions under Destination.
type CopyRequest struct {
	SourcePaths []string
	Destination string
	IngestDate  string
	RunID       string
}

// CopyResult reports what the engine committed.
type CopyResult struct {
	RowsWritten int64
}

// ObjectStore answers preflight questions about the raw and curated buckets.
type ObjectStore interface {
	List(ctx context.Context, bucket, prefix string) ([]string, error)
	Stat(ctx context.Context, bucket, key string) error
	BucketExists(ctx context.Context, bucket string) (bool, error)
}

// Engine executes the read-transform-write as a single blocking call.
type Engine interface {
	CopyCSVToParquet(ctx context.Context, req CopyRequest) (CopyResult, error)
}

// Service orchestrates one run: guard, resolve sources, copy.
type Service struct {
	store  ObjectStore
	engine Engine
}

func NewService(store ObjectStore, engine Engine) *Service {
	return &Service{store: store, engine: engine}
}

// Run executes the job once. The returned Result has Skipped set when the
// non-CSV guard fired; every error is either a *ReadFailure or *WriteFailure.
// Re-running against the same destination on the same day appends duplicate
// rows: dedup is the orchestrator's problem, not this job's.
func (s *Service) Run(ctx context.Context, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	// Guard: single-object triggers for anything but a CSV are a clean no-op.
	if cfg.ObjectKey != "" && !isCSVKey(cfg.ObjectKey) {
		slog.InfoContext(ctx, "non-CSV object detected, skipping",
			"key", cfg.ObjectKey, "run_id", cfg.RunID)
		return Result{Skipped: true, SkippedKey: cfg.ObjectKey}, nil
	}

	source := NewSource(cfg)
	paths, err := s.resolveSourcePaths(ctx, source)
	if err != nil {
		return Result{}, &ReadFailure{Err: err}
	}

	exists, err := s.store.BucketExists(ctx, cfg.CuratedBucket)
	if err != nil {
		return Result{}, &WriteFailure{Err: fmt.Errorf("check curated bucket: %w", err)}
	}
	if !exists {
		return Result{}, &WriteFailure{Err: fmt.Errorf("curated bucket %q does not exist", cfg.CuratedBucket)}
	}

	destination := storage.S3URI(cfg.CuratedBucket, strings.TrimSuffix(cfg.CuratedPrefix, "/"))

	slog.DebugContext(ctx, "ingestion started",
		"source_objects", len(paths), "destination", destination,
		"ingest_date", cfg.IngestDate, "run_id", cfg.RunID)

	copied, err := s.engine.CopyCSVToParquet(ctx, CopyRequest{
		SourcePaths: paths,
		Destination: destination,
		IngestDate:  cfg.IngestDate.String(),
		RunID:       cfg.RunID.String(),
	})
	if err != nil {
		return Result{}, &WriteFailure{Err: err}
	}

	slog.InfoContext(ctx, "ingestion complete",
		"partition", storage.PartitionURI(cfg.CuratedBucket, cfg.CuratedPrefix, cfg.IngestDate),
		"rows", copied.RowsWritten, "run_id", cfg.RunID)

	return Result{
		Destination:   destination,
		PartitionDate: cfg.IngestDate,
		ObjectsRead:   len(paths),
		RowsWritten:   copied.RowsWritten,
	}, nil
}

// resolveSourcePaths turns the input selection into concrete engine paths,
// failing when nothing matches so the engine is never invoked on an empty
// source.
func (s *Service) resolveSourcePaths(ctx context.Context, source Source) ([]string, error) {
	switch source.Kind {
	case SourceSingleObject:
		if err := s.store.Stat(ctx, source.Bucket, source.Key); err != nil {
			return nil, err
		}
		return []string{storage.S3URI(source.Bucket, source.Key)}, nil
	case SourcePrefixScan:
		keys, err := s.store.List(ctx, source.Bucket, source.Prefix)
		if err != nil {
			return nil, err
		}
		if len(keys) == 0 {
			return nil, fmt.Errorf("no objects under %s", storage.S3URI(source.Bucket, source.Prefix))
		}
		paths := make([]string, len(keys))
		for i, key := range keys {
			paths[i] = storage.S3URI(source.Bucket, key)
		}
		return paths, nil
	default:
		return nil, fmt.Errorf("unknown source kind %d", source.Kind)
	}
}
