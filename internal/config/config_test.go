package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("ENV", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_RETRY_INTERVAL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "jobvibe.db", cfg.DatabaseURL)
	assert.Equal(t, 5*time.Second, cfg.DBRetryInterval)
	assert.Equal(t, int64(100<<20), cfg.MaxUploadBytes)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DB_RETRY_INTERVAL", "250ms")
	t.Setenv("MAX_UPLOAD_SIZE_MB", "5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.test, https://b.test")
	t.Setenv("PUBLIC_BASE_URL", "https://api.jobvibe.test/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.DBRetryInterval)
	assert.Equal(t, int64(5<<20), cfg.MaxUploadBytes)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "https://api.jobvibe.test", cfg.PublicBaseURL)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("JWT_TTL", "forever")
		_, err := Load()
		assert.ErrorContains(t, err, "JWT_TTL")
	})

	t.Run("bad size", func(t *testing.T) {
		t.Setenv("MAX_UPLOAD_SIZE_MB", "lots")
		_, err := Load()
		assert.ErrorContains(t, err, "MAX_UPLOAD_SIZE_MB")
	})

	t.Run("production default secret", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("JWT_SECRET", "")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.test")
		_, err := Load()
		assert.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("production wildcard cors", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("JWT_SECRET", "s3cr3t")
		t.Setenv("CORS_ALLOWED_ORIGINS", "*")
		_, err := Load()
		assert.ErrorContains(t, err, "CORS_ALLOWED_ORIGINS")
	})
}
