package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ":8000", cfg.Server.Listen)
	assert.Equal(t, int64(10<<20), cfg.Server.MaxUploadBytes)
	assert.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty listen", func(c *Config) { c.Server.Listen = "" }},
		{"zero upload cap", func(c *Config) { c.Server.MaxUploadBytes = 0 }},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestMerge(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Merge(&Config{
		Server: ServerConfig{Listen: ":9000", ShutdownTimeout: 30 * time.Second},
		Log:    LogConfig{Level: "debug"},
	})

	assert.Equal(t, ":9000", cfg.Server.Listen)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Untouched fields keep their defaults.
	assert.Equal(t, int64(10<<20), cfg.Server.MaxUploadBytes)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Server.Listen = ":9999"
	cfg.UI.Dir = "/srv/ui"
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, ":9999", loaded.Server.Listen)
	assert.Equal(t, "/srv/ui", loaded.UI.Dir)
}

func TestLoader_EnvOverrides(t *testing.T) {
	t.Setenv("CASEBRIDGE_LISTEN", ":7777")
	t.Setenv("CASEBRIDGE_MAX_UPLOAD_BYTES", "1024")
	t.Setenv("CASEBRIDGE_LOG_LEVEL", "warn")

	cfg, err := NewLoader(nil).Load()
	require.NoError(t, err)

	assert.Equal(t, ":7777", cfg.Server.Listen)
	assert.Equal(t, int64(1024), cfg.Server.MaxUploadBytes)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoader_InvalidEnvIgnored(t *testing.T) {
	t.Setenv("CASEBRIDGE_MAX_UPLOAD_BYTES", "not-a-number")

	cfg, err := NewLoader(nil).Load()
	require.NoError(t, err)
	assert.Equal(t, int64(10<<20), cfg.Server.MaxUploadBytes)
}
