// Package config loads and validates application configuration.
package config

import (
	"os"
	"strings"

	apperrors "s3m/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	ServerPort      string
	GinMode         string
	AccessKeyID     string `validate:"required"`
	SecretAccessKey string `validate:"required"`
	BucketName      string `validate:"required"`
	BucketEndpoint  string `validate:"required"`
	BucketRegion    string
	KeyPrefix       string
	AutoEndpoint    bool
}

// Load reads configuration from .env file and environment variables.
// It returns a ConfigValidationError listing every required field that
// is blank; no network access happens here.
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist - env vars may be set directly)
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		GinMode:         getEnv("GIN_MODE", "debug"),
		AccessKeyID:     strings.TrimSpace(os.Getenv("S3M_ACCESS_KEY_ID")),
		SecretAccessKey: strings.TrimSpace(os.Getenv("S3M_SECRET_ACCESS_KEY")),
		BucketName:      strings.TrimSpace(os.Getenv("S3M_BUCKET_NAME")),
		BucketEndpoint:  strings.TrimSpace(os.Getenv("S3M_BUCKET_ENDPOINT")),
		BucketRegion:    strings.TrimSpace(os.Getenv("S3M_BUCKET_REGION")),
		KeyPrefix:       os.Getenv("S3M_KEY_PREFIX"),
		AutoEndpoint:    getEnv("S3M_AUTOENDPOINT", "false") == "true",
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// envKeys maps Config field names to the environment variables that set them,
// so validation errors name the knob the operator has to fix.
var envKeys = map[string]string{
	"AccessKeyID":     "S3M_ACCESS_KEY_ID",
	"SecretAccessKey": "S3M_SECRET_ACCESS_KEY",
	"BucketName":      "S3M_BUCKET_NAME",
	"BucketEndpoint":  "S3M_BUCKET_ENDPOINT",
}

// validate checks all required fields at once and aggregates the failures.
func validate(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}

	var fields []string
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, verr := range verrs {
			if key, ok := envKeys[verr.Field()]; ok {
				fields = append(fields, key)
			} else {
				fields = append(fields, verr.Field())
			}
		}
	}
	return &apperrors.ConfigValidationError{Fields: fields}
}

// getEnv reads an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
