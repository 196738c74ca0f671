package storage

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/healthetl/ingest-go/internal/config"
)

// MinIOClient implements object-store preflight checks using MinIO.
type MinIOClient struct {
	client *minio.Client
}

// NewMinIOClient creates a new MinIO storage client from the shared S3 config.
func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		Secure: cfg.S3UseSSL,
		Region: cfg.S3Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &MinIOClient{client: client}, nil
}

// List returns the keys of all objects under the given prefix.
func (m *MinIOClient) List(ctx context.Context, bucket, prefix string) ([]string, error) {
	var keys []string
	for object := range m.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", object.Err)
		}
		keys = append(keys, object.Key)
	}
	return keys, nil
}

// Stat checks that a single object exists and is readable.
func (m *MinIOClient) Stat(ctx context.Context, bucket, key string) error {
	if _, err := m.client.StatObject(ctx, bucket, key, minio.StatObjectOptions{}); err != nil {
		return fmt.Errorf("failed to stat object %q: %w", key, err)
	}
	return nil
}

// BucketExists reports whether the bucket exists.
func (m *MinIOClient) BucketExists(ctx context.Context, bucket string) (bool, error) {
	exists, err := m.client.BucketExists(ctx, bucket)
	if err != nil {
		return false, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	return exists, nil
}
