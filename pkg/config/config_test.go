package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "http://localhost:5000", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.NotEmpty(t, cfg.Session.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, ":9190", cfg.Metrics.Addr)
	assert.Equal(t, "./exports", cfg.Export.Dir)
}

func TestLoadFromEnvFile(t *testing.T) {
	dir := t.TempDir()
	env := `ENV=production
API_BASE_URL=https://sdms.school.test/
API_TIMEOUT=5s
ENABLE_METRICS=true
EXPORT_DIR=/tmp/exports
`
	require.NoError(t, os.WriteFile(dir+"/.env", []byte(env), 0o600))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.Env)
	// Trailing slash is normalised away so path joins stay clean.
	assert.Equal(t, "https://sdms.school.test", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/tmp/exports", cfg.Export.Dir)
}

func TestParseDurationFallback(t *testing.T) {
	assert.Equal(t, time.Minute, parseDuration("", time.Minute))
	assert.Equal(t, time.Minute, parseDuration("not-a-duration", time.Minute))
	assert.Equal(t, 30*time.Second, parseDuration("30s", time.Minute))
}
