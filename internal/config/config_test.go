package config

import (
	"fmt"
	"os"
	"testing"
)

var requiredVars = []string{"S3_ENDPOINT", "S3_ACCESS_KEY", "S3_SECRET_KEY"}

func TestLoad_RequiredVarsMissing(t *testing.T) {

	for _, configVar := range requiredVars {
		os.Setenv(configVar, "test-value")
	}
	for _, configVar := range requiredVars {
		t.Run(configVar, func(t *testing.T) {
			os.Unsetenv(configVar)
			defer os.Setenv(configVar, "test-value")
			_, err := Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if y, ok := err.(*ErrMissingRequiredEnvVar); !ok {
				t.Fatalf("expected ErrMissingRequiredEnvVar, got %s", y)
			}
			var varName string
			c, _ := fmt.Sscanf(
				err.Error(),
				"required environment variable %q is not set",
				&varName,
			)
			if c != 1 || varName != configVar {
				t.Fatalf("expected ErrMissingRequiredEnvVar to be set to %q, got %q", configVar, varName)
			}
		})
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	testValue := "test-value"
	for _, configVar := range requiredVars {
		os.Setenv(configVar, testValue)
	}
	os.Unsetenv("S3_REGION")
	os.Unsetenv("S3_USE_SSL")

	config, err := Load()

	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if config.S3Endpoint != testValue {
		t.Fatal()
	}
	if config.S3AccessKey != testValue {
		t.Fatal()
	}
	if config.S3SecretKey != testValue {
		t.Fatal()
	}
	if config.S3Region != "us-east-1" {
		t.Fatalf("expected default region us-east-1, got %q", config.S3Region)
	}
	if config.S3UseSSL {
		t.Fatal("expected S3UseSSL to be false by default")
	}
}

func TestLoad_SSLAndRegion(t *testing.T) {
	testValue := "test-value"
	for _, configVar := range requiredVars {
		os.Setenv(configVar, testValue)
	}
	os.Setenv("S3_USE_SSL", "true")
	os.Setenv("S3_REGION", "eu-central-1")
	defer os.Unsetenv("S3_USE_SSL")
	defer os.Unsetenv("S3_REGION")

	config, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if !config.S3UseSSL {
		t.Fatal("expected S3UseSSL to be true")
	}
	if config.S3Region != "eu-central-1" {
		t.Fatalf("expected region eu-central-1, got %q", config.S3Region)
	}
}
