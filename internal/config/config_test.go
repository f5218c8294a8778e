package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jobboard.yaml")
	content := `
addr: ":8080"
database_dsn: "host=localhost dbname=jobboard"
token_secret: "file-secret"
token_ttl: "2h"
log_level: "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "host=localhost dbname=jobboard", cfg.DatabaseDSN)
	assert.Equal(t, "file-secret", cfg.TokenSecret)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jobboard.yaml")
	content := `
database_dsn: "host=localhost dbname=jobboard"
token_secret: "file-secret"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("JOBBOARD_TOKEN_SECRET", "env-secret")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.TokenSecret)
}

func TestDefaultsApplied(t *testing.T) {
	t.Setenv("JOBBOARD_DATABASE_DSN", "host=localhost dbname=jobboard")
	t.Setenv("JOBBOARD_TOKEN_SECRET", "env-secret")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":3001", cfg.Addr)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestMissingSecretFails(t *testing.T) {
	t.Setenv("JOBBOARD_DATABASE_DSN", "host=localhost dbname=jobboard")

	_, err := Load("")
	assert.Error(t, err)
}
