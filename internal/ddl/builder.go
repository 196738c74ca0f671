// Package ddl builds DuckDB statements for secrets, extensions, and the
// CSV-to-Parquet copy. All user-supplied strings pass through identifier or
// literal quoting before they reach a statement.
package ddl

import (
	"fmt"
	"strings"
)

// InstallExtensions returns the statements that make httpfs available so
// s3:// URIs resolve.
func InstallExtensions() []string {
	return []string{"INSTALL httpfs; LOAD httpfs;"}
}

// CreateS3Secret returns a DuckDB DDL statement to create an S3 secret.
func CreateS3Secret(name, keyID, secret, endpoint, region, urlStyle string, useSSL bool) (string, error) {
	if err := ValidateIdentifier(name); err != nil {
		return "", fmt.Errorf("invalid secret name: %w", err)
	}
	return fmt.Sprintf(`CREATE SECRET %s (
	TYPE S3,
	KEY_ID %s,
	SECRET %s,
	ENDPOINT %s,
	REGION %s,
	URL_STYLE %s,
	USE_SSL %t
)`,
		QuoteIdentifier(name),
		QuoteLiteral(keyID),
		QuoteLiteral(secret),
		QuoteLiteral(endpoint),
		QuoteLiteral(region),
		QuoteLiteral(urlStyle),
		useSSL,
	), nil
}

// DropS3Secret returns a DuckDB DDL statement to drop a named secret.
func DropS3Secret(name string) (string, error) {
	if err := ValidateIdentifier(name); err != nil {
		return "", fmt.Errorf("invalid secret name: %w", err)
	}
	return fmt.Sprintf("DROP SECRET %s", QuoteIdentifier(name)), nil
}

// CopyCSVToParquet returns the single statement that performs the whole run:
// a header-aware, schema-inferring read of the source files, the literal
// ingest_date column append, and an appending Parquet write partitioned by
// ingest_date. filenamePrefix keys output files to the run so appends never
// collide with files from earlier runs.
func CopyCSVToParquet(sources []string, destination, ingestDate, filenamePrefix string) (string, error) {
	if len(sources) == 0 {
		return "", fmt.Errorf("at least one source path is required")
	}
	if destination == "" {
		return "", fmt.Errorf("destination is required")
	}
	if ingestDate == "" {
		return "", fmt.Errorf("ingest date is required")
	}
	if filenamePrefix == "" {
		return "", fmt.Errorf("filename prefix is required")
	}

	quoted := make([]string, len(sources))
	for i, s := range sources {
		quoted[i] = QuoteLiteral(s)
	}

	return fmt.Sprintf(`COPY (
	SELECT *, %s AS ingest_date
	FROM read_csv([%s], header = true)
) TO %s (FORMAT PARQUET, PARTITION_BY (ingest_date), APPEND, FILENAME_PATTERN %s)`,
		QuoteLiteral(ingestDate),
		strings.Join(quoted, ", "),
		QuoteLiteral(destination),
		QuoteLiteral(filenamePrefix+"_{uuid}"),
	), nil
}
