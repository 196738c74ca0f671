package config

import (
	"fmt"
	"os"
)

// Config holds the object-store connection settings shared by the MinIO
// client and the engine's S3 secret.
type Config struct {
	S3Endpoint  string // e.g., "localhost:9000"
	S3AccessKey string
	S3SecretKey string
	S3Region    string
	S3UseSSL    bool
}

type ErrMissingRequiredEnvVar struct {
	Name string
}

func (e *ErrMissingRequiredEnvVar) Error() string {
	return fmt.Sprintf("required environment variable %q is not set", e.Name)
}

// Load reads configuration from environment variables.
// Returns an error if required variables are missing.
func Load() (*Config, error) {
	config := Config{}
	config.S3Endpoint = os.Getenv("S3_ENDPOINT")
	if config.S3Endpoint == "" {
		return nil, &ErrMissingRequiredEnvVar{Name: "S3_ENDPOINT"}
	}
	config.S3AccessKey = os.Getenv("S3_ACCESS_KEY")
	if config.S3AccessKey == "" {
		return nil, &ErrMissingRequiredEnvVar{Name: "S3_ACCESS_KEY"}
	}
	config.S3SecretKey = os.Getenv("S3_SECRET_KEY")
	if config.S3SecretKey == "" {
		return nil, &ErrMissingRequiredEnvVar{Name: "S3_SECRET_KEY"}
	}
	config.S3Region = os.Getenv("S3_REGION")
	if config.S3Region == "" {
		config.S3Region = "us-east-1"
	}
	config.S3UseSSL = os.Getenv("S3_USE_SSL") == "true"

	return &config, nil
}
