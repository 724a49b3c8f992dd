package config

import (
	"testing"

	apperrors "s3m/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("S3M_ACCESS_KEY_ID", "AKIAEXAMPLE")
	t.Setenv("S3M_SECRET_ACCESS_KEY", "secret")
	t.Setenv("S3M_BUCKET_NAME", "my-bucket")
	t.Setenv("S3M_BUCKET_ENDPOINT", "https://minio.example.com")
}

func TestGetEnv(t *testing.T) {
	t.Run("returns environment variable value when set", func(t *testing.T) {
		t.Setenv("TEST_CONFIG_VAR", "custom_value")

		result := getEnv("TEST_CONFIG_VAR", "default_value")

		assert.Equal(t, "custom_value", result)
	})

	t.Run("returns default value when env var not set", func(t *testing.T) {
		result := getEnv("NONEXISTENT_CONFIG_VAR_12345", "default_value")

		assert.Equal(t, "default_value", result)
	})
}

func TestLoad(t *testing.T) {
	t.Run("loads config with all env vars set", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SERVER_PORT", "3000")
		t.Setenv("GIN_MODE", "release")
		t.Setenv("S3M_BUCKET_REGION", "eu-west-1")
		t.Setenv("S3M_KEY_PREFIX", "/direct/")
		t.Setenv("S3M_AUTOENDPOINT", "true")

		cfg, err := Load()

		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "AKIAEXAMPLE", cfg.AccessKeyID)
		assert.Equal(t, "secret", cfg.SecretAccessKey)
		assert.Equal(t, "my-bucket", cfg.BucketName)
		assert.Equal(t, "https://minio.example.com", cfg.BucketEndpoint)
		assert.Equal(t, "eu-west-1", cfg.BucketRegion)
		assert.Equal(t, "/direct/", cfg.KeyPrefix)
		assert.Equal(t, "3000", cfg.ServerPort)
		assert.Equal(t, "release", cfg.GinMode)
		assert.True(t, cfg.AutoEndpoint)
	})

	t.Run("uses default values for optional env vars", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SERVER_PORT", "")
		t.Setenv("GIN_MODE", "")
		t.Setenv("S3M_BUCKET_REGION", "")
		t.Setenv("S3M_KEY_PREFIX", "")
		t.Setenv("S3M_AUTOENDPOINT", "")

		cfg, err := Load()

		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.ServerPort)
		assert.Equal(t, "debug", cfg.GinMode)
		assert.Empty(t, cfg.BucketRegion)
		assert.Empty(t, cfg.KeyPrefix)
		assert.False(t, cfg.AutoEndpoint)
	})

	t.Run("AutoEndpoint is false for non-true values", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("S3M_AUTOENDPOINT", "yes")

		cfg, err := Load()

		require.NoError(t, err)
		assert.False(t, cfg.AutoEndpoint)
	})

	t.Run("fails with aggregated errors when required fields are blank", func(t *testing.T) {
		t.Setenv("S3M_ACCESS_KEY_ID", "")
		t.Setenv("S3M_SECRET_ACCESS_KEY", "")
		t.Setenv("S3M_BUCKET_NAME", "")
		t.Setenv("S3M_BUCKET_ENDPOINT", "")

		cfg, err := Load()

		require.Error(t, err)
		assert.Nil(t, cfg)

		var verr *apperrors.ConfigValidationError
		require.ErrorAs(t, err, &verr)
		assert.ElementsMatch(t, []string{
			"S3M_ACCESS_KEY_ID",
			"S3M_SECRET_ACCESS_KEY",
			"S3M_BUCKET_NAME",
			"S3M_BUCKET_ENDPOINT",
		}, verr.Fields)
	})

	t.Run("fails when a single required field is missing", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("S3M_BUCKET_NAME", "")

		cfg, err := Load()

		require.Error(t, err)
		assert.Nil(t, cfg)

		var verr *apperrors.ConfigValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"S3M_BUCKET_NAME"}, verr.Fields)
	})

	t.Run("whitespace-only required fields are treated as blank", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("S3M_SECRET_ACCESS_KEY", "   ")

		cfg, err := Load()

		require.Error(t, err)
		assert.Nil(t, cfg)
	})
}
