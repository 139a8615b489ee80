package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_defaults(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_EXPIRY", "")
	t.Setenv("JWT_REFRESH_EXPIRY", "")
	t.Setenv("SERVICE_TIMEOUT", "")
	t.Setenv("RATE_LIMIT", "")
	t.Setenv("EMAIL_PROVIDER", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Contains(t, cfg.DBUrl, "eventapi")
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Equal(t, 60*time.Minute, cfg.JWTExpiry)
	assert.Equal(t, 24*time.Hour, cfg.JWTRefreshTTL)
	assert.Equal(t, 5*time.Second, cfg.ServiceTimeout)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, "noop", cfg.Email.Provider)
	assert.Empty(t, cfg.AllowedOrigins)
}

func TestLoad_overrides(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRY", "2h")
	t.Setenv("JWT_REFRESH_EXPIRY", "168h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test/ ,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTRefreshTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test/"}, cfg.AllowedOrigins)
}

func TestLoad_invalidDuration(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("SERVICE_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_productionRequiresSecret(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}
