package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "local", cfg.ObjectStoreType)
	assert.Equal(t, 10*time.Minute, cfg.PDFCacheTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.ShareTokenTTL)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowOrigin)
	assert.Equal(t, 10, cfg.DB.MaxOpenConns)
	assert.Equal(t, 5*time.Second, cfg.DB.PingTimeout)
}

func TestLoadFileThenEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "portal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9090"
env: staging
redisAddr: localhost:6379
pdfCacheTtl: 30s
db:
  maxOpenConns: 4
  connMaxIdleTime: 1m
log:
  level: debug
  maxBackups: 7
`), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "7070")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("SHARE_TOKEN_TTL", "48h")
	t.Setenv("DB_MAX_IDLE_CONNS", "2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "staging", cfg.Env)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 30*time.Second, cfg.PDFCacheTTL)
	assert.Equal(t, 48*time.Hour, cfg.ShareTokenTTL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 7, cfg.Log.MaxBackups)
	assert.Equal(t, 4, cfg.DB.MaxOpenConns)
	assert.Equal(t, 2, cfg.DB.MaxIdleConns)
	assert.Equal(t, time.Minute, cfg.DB.ConnMaxIdleTime)
	assert.Equal(t, time.Hour, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigin)
}

func TestLoadDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=warn\n"), 0o600))
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_LEVEL")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadValidation(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("production requires database and secret", func(t *testing.T) {
		t.Setenv("ENV", "prod")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DatabaseURL")
	})

	t.Run("s3 requires bucket", func(t *testing.T) {
		t.Setenv("OBJECT_STORE", "S3")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "S3Bucket")
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("PDF_CACHE_TTL", "soon")
		_, err := Load()
		assert.ErrorContains(t, err, "PDF_CACHE_TTL")
	})

	t.Run("bad redis db", func(t *testing.T) {
		t.Setenv("REDIS_DB", "x")
		_, err := Load()
		assert.ErrorContains(t, err, "REDIS_DB")
	})
}
