package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/healthetl/ingest-go/internal/config"
	"github.com/healthetl/ingest-go/internal/engine"
	"github.com/healthetl/ingest-go/internal/exitcode"
	"github.com/healthetl/ingest-go/internal/job"
	"github.com/healthetl/ingest-go/internal/model"
	"github.com/healthetl/ingest-go/internal/storage"
)

func main() {
	// Configure the global logger
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})))

	// Load .env before flag defaults read the environment
	if err := godotenv.Load(); err != nil {
		slog.Warn("failed to load env vars", "error", err)
	}

	// Parse CLI flags; each falls back to the env var the orchestrator sets
	rawBucket := flag.String("raw-bucket", os.Getenv("RAW_BUCKET"), "Source bucket (env RAW_BUCKET)")
	rawPrefix := flag.String("raw-prefix", os.Getenv("RAW_PREFIX"), "Source prefix (env RAW_PREFIX)")
	curatedBucket := flag.String("curated-bucket", os.Getenv("CURATED_BUCKET"), "Destination bucket (env CURATED_BUCKET)")
	curatedPrefix := flag.String("curated-prefix", os.Getenv("CURATED_PREFIX"), "Destination prefix (env CURATED_PREFIX)")
	objectKey := flag.String("object-key", os.Getenv("S3_OBJECT_KEY"), "Single object key to ingest (env S3_OBJECT_KEY, optional)")
	runID := flag.String("run-id", os.Getenv("RUN_ID"), "Run identifier from orchestration (env RUN_ID, optional)")
	flag.Parse()

	jobCfg, err := resolveJobConfig(*rawBucket, *rawPrefix, *curatedBucket, *curatedPrefix, *objectKey, *runID, time.Now())
	if err != nil {
		slog.Error("invalid parameters", "error", err)
		fmt.Fprintf(os.Stderr, "Usage: %v\n", err)
		os.Exit(exitcode.ConfigError)
	}

	// Load object-store configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(exitcode.ConfigError)
	}

	// Create a cancellable context (for graceful shutdown)
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, err := storage.NewMinIOClient(cfg)
	if err != nil {
		slog.Error("failed to initialize minio client", "error", err)
		os.Exit(exitcode.ConfigError)
	}

	// The engine lives exactly as long as this run
	eng, err := engine.Open(ctx)
	if err != nil {
		slog.Error("failed to open engine", "error", err)
		os.Exit(exitcode.ConfigError)
	}
	defer eng.Close()

	if err := eng.ConfigureS3(ctx, cfg); err != nil {
		slog.Error("failed to configure engine S3 access", "error", err)
		os.Exit(exitcode.ConfigError)
	}

	svc := job.NewService(store, eng)

	result, err := svc.Run(ctx, jobCfg)
	if err != nil {
		slog.Error("application error", "error", err, "run_id", jobCfg.RunID)

		var readErr *job.ReadFailure
		var writeErr *job.WriteFailure
		switch {
		case errors.As(err, &readErr):
			os.Exit(exitcode.ReadError)
		case errors.As(err, &writeErr):
			os.Exit(exitcode.WriteError)
		default:
			os.Exit(exitcode.ConfigError)
		}
	}

	if result.Skipped {
		fmt.Printf("Non-CSV object detected (%s); skipping.\n", result.SkippedKey)
		return
	}
	fmt.Printf("Wrote Parquet to %s partition=%s\n", result.Destination, result.PartitionDate)
}

// resolveJobConfig mirrors the orchestrator's argument resolution: the ingest
// date is fixed once from the current UTC instant, and runs without an
// orchestrator-supplied run ID get a generated one.
func resolveJobConfig(rawBucket, rawPrefix, curatedBucket, curatedPrefix, objectKey, runID string, now time.Time) (job.Config, error) {
	id := model.RunID(runID)
	if runID == "" {
		id = model.NewRunID()
	}

	cfg := job.Config{
		RawBucket:     rawBucket,
		RawPrefix:     rawPrefix,
		CuratedBucket: curatedBucket,
		CuratedPrefix: curatedPrefix,
		ObjectKey:     objectKey,
		RunID:         id,
		IngestDate:    model.NewIngestDate(now),
	}
	if err := cfg.Validate(); err != nil {
		return job.Config{}, err
	}
	return cfg, nil
}
