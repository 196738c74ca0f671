// Package engine wraps an in-process DuckDB handle. DuckDB owns everything
// the job delegates: CSV schema inference, the Parquet encode, hive
// partitioning, and S3 I/O through the httpfs extension.
package engine

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/healthetl/ingest-go/internal/config"
	"github.com/healthetl/ingest-go/internal/ddl"
	"github.com/healthetl/ingest-go/internal/job"
)

// s3SecretName is the DuckDB secret holding the object-store credentials.
const s3SecretName = "ingest_s3"

// DuckDB is the compute engine for one job invocation. Its lifecycle is
// scoped to the run: main opens it, runs the job, closes it.
type DuckDB struct {
	db *sql.DB
}

// Compile-time interface check.
var _ job.Engine = (*DuckDB)(nil)

// Open creates an in-memory DuckDB handle.
func Open(ctx context.Context) (*DuckDB, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping duckdb: %w", err)
	}
	return &DuckDB{db: db}, nil
}

// Close releases the DuckDB handle.
func (e *DuckDB) Close() error {
	return e.db.Close()
}

// ConfigureS3 installs the httpfs extension and creates the S3 secret so
// s3:// paths resolve against the configured object store. Not needed when
// the engine only touches local files.
func (e *DuckDB) ConfigureS3(ctx context.Context, cfg *config.Config) error {
	for _, stmt := range ddl.InstallExtensions() {
		if _, err := e.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("extension setup (%s): %w", stmt, err)
		}
	}

	secretSQL, err := ddl.CreateS3Secret(s3SecretName,
		cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Endpoint, cfg.S3Region,
		"path", cfg.S3UseSSL)
	if err != nil {
		return fmt.Errorf("build DDL: %w", err)
	}
	if _, err := e.db.ExecContext(ctx, secretSQL); err != nil {
		return fmt.Errorf("create S3 secret %q: %w", s3SecretName, err)
	}
	return nil
}

// CopyCSVToParquet runs the whole read-transform-write as one blocking
// statement and returns the number of rows committed. The COPY either
// commits all output files or none.
func (e *DuckDB) CopyCSVToParquet(ctx context.Context, req job.CopyRequest) (job.CopyResult, error) {
	stmt, err := ddl.CopyCSVToParquet(req.SourcePaths, req.Destination, req.IngestDate, req.RunID)
	if err != nil {
		return job.CopyResult{}, fmt.Errorf("build copy statement: %w", err)
	}

	// COPY ... TO returns a single row holding the written row count.
	var rows int64
	if err := e.db.QueryRowContext(ctx, stmt).Scan(&rows); err != nil {
		return job.CopyResult{}, fmt.Errorf("copy csv to parquet: %w", err)
	}
	return job.CopyResult{RowsWritten: rows}, nil
}
