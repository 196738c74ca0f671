package exitcode

// Exit codes for the ingest CLI.
// The orchestrator can use these to decide retry strategy.
const (
	// Success - job completed, or the non-CSV guard skipped the run on purpose
	Success = 0

	// ConfigError - missing or invalid configuration/parameters
	// Don't retry: fix the invocation first
	ConfigError = 1

	// ReadError - source objects unreachable, missing, or unreadable
	// Retry with backoff; investigate if it persists
	ReadError = 2

	// WriteError - failed to commit Parquet output to the curated bucket
	// Retry with backoff
	WriteError = 3
)
