package storage

import (
	"fmt"
	"strings"

	"github.com/healthetl/ingest-go/internal/model"
)

// S3URI builds the s3://<bucket>/<key> form the engine understands.
func S3URI(bucket, key string) string {
	return fmt.Sprintf("s3://%s/%s", bucket, strings.TrimPrefix(key, "/"))
}

// PartitionDir returns the hive-style partition directory name for a date.
func PartitionDir(date model.IngestDate) string {
	return fmt.Sprintf("ingest_date=%s", date)
}

// PartitionURI builds the full URI of the partition written by a run,
// s3://<bucket>/<prefix>/ingest_date=<date>.
func PartitionURI(bucket, prefix string, date model.IngestDate) string {
	return S3URI(bucket, strings.TrimSuffix(prefix, "/")+"/"+PartitionDir(date))
}
