package config_test

import (
	"myblog/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
http:
  addr: ":9090"
  pprof: true
jwt:
  secret: s3cret
metadata:
  timeout: 3s
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.True(t, cfg.HTTP.Pprof)
	require.Equal(t, "*", cfg.HTTP.CORSOrigin)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.Equal(t, "s3cret", cfg.JWT.Secret)
	require.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
	require.Equal(t, 3*time.Second, cfg.Metadata.Timeout)
	require.EqualValues(t, 5<<20, cfg.Metadata.MaxBodyBytes)
	require.Equal(t, "myblog", cfg.Database.DatabaseName)
	require.True(t, cfg.Worker.Enabled)
}

func TestLoad_EnvWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("http:\n  addr: \":9090\"\n"), 0o600))
	t.Setenv("HTTP_ADDR", ":7070")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.HTTP.Addr)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}
