package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfigFile writes YAML to a temp file and points CONFIG_PATH at it.
func writeConfigFile(t *testing.T, content string) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "balancer.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))
	t.Setenv(envConfigPath, cfgPath)
}

func TestLoadConfig_YAML(t *testing.T) {
	t.Setenv(envHTTPPort, "8080")
	t.Setenv(envRedisAddr, "redis://localhost:6379/0")
	writeConfigFile(t, `
discoverer:
  url: http://mydiscoverer:8080
  refresh_interval_ms: 5000
expiry:
  idle_threshold_ms: 60000
  sweep_interval_ms: 10000
aperture:
  initial_width: 3
`)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisAddr)
	assert.Equal(t, "http://mydiscoverer:8080", cfg.DiscovererURL)
	assert.Equal(t, 5*time.Second, cfg.RefreshInterval)
	assert.Equal(t, time.Minute, cfg.Expiry.IdleThreshold)
	assert.Equal(t, 10*time.Second, cfg.Expiry.SweepInterval)
	assert.Equal(t, 3, cfg.ApertureWidth)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv(envHTTPPort, "8080")
	t.Setenv(envRedisAddr, "")
	writeConfigFile(t, `
discoverer:
  url: http://mydiscoverer:8080
  refresh_interval_ms: 5000
expiry:
  idle_threshold_ms: 60000
`)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 1, cfg.ApertureWidth, "aperture width defaults to 1")
	assert.Zero(t, cfg.Expiry.SweepInterval)
	assert.Equal(t, 30*time.Second, cfg.Expiry.EffectiveSweepInterval(), "sweep defaults to half the threshold")
}

func TestLoadConfig_HTTPPort(t *testing.T) {
	writeConfigFile(t, `
discoverer:
  url: http://mydiscoverer:8080
  refresh_interval_ms: 5000
expiry:
  idle_threshold_ms: 60000
`)

	t.Run("missing", func(t *testing.T) {
		t.Setenv(envHTTPPort, "")
		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), envHTTPPort)
	})
	t.Run("not_a_number", func(t *testing.T) {
		t.Setenv(envHTTPPort, "eighty")
		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), envHTTPPort)
	})
	t.Run("out_of_range", func(t *testing.T) {
		t.Setenv(envHTTPPort, "70000")
		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), envHTTPPort)
	})
}

func TestLoadConfig_MissingConfigPath(t *testing.T) {
	t.Setenv(envHTTPPort, "8080")
	t.Setenv(envConfigPath, "")
	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), envConfigPath)
}

func TestLoadConfig_BadYAML(t *testing.T) {
	t.Setenv(envHTTPPort, "8080")

	t.Run("file_missing", func(t *testing.T) {
		t.Setenv(envConfigPath, filepath.Join(t.TempDir(), "nope.yaml"))
		_, err := LoadConfig()
		require.Error(t, err)
	})
	t.Run("not_yaml", func(t *testing.T) {
		writeConfigFile(t, `{{{`)
		_, err := LoadConfig()
		require.Error(t, err)
	})
}

func TestLoadConfig_Validation(t *testing.T) {
	t.Setenv(envHTTPPort, "8080")

	tests := []struct {
		name           string
		content        string
		wantErrContain string
	}{
		{
			name: "discoverer_url_missing",
			content: `
discoverer:
  refresh_interval_ms: 5000
expiry:
  idle_threshold_ms: 60000
`,
			wantErrContain: "discoverer.url",
		},
		{
			name: "refresh_interval_nonpositive",
			content: `
discoverer:
  url: http://mydiscoverer:8080
  refresh_interval_ms: 0
expiry:
  idle_threshold_ms: 60000
`,
			wantErrContain: "refresh_interval_ms",
		},
		{
			name: "idle_threshold_nonpositive",
			content: `
discoverer:
  url: http://mydiscoverer:8080
  refresh_interval_ms: 5000
expiry:
  idle_threshold_ms: 0
`,
			wantErrContain: "idle_threshold_ms",
		},
		{
			name: "sweep_interval_negative",
			content: `
discoverer:
  url: http://mydiscoverer:8080
  refresh_interval_ms: 5000
expiry:
  idle_threshold_ms: 60000
  sweep_interval_ms: -1
`,
			wantErrContain: "sweep_interval_ms",
		},
		{
			name: "aperture_width_negative",
			content: `
discoverer:
  url: http://mydiscoverer:8080
  refresh_interval_ms: 5000
expiry:
  idle_threshold_ms: 60000
aperture:
  initial_width: -2
`,
			wantErrContain: "initial_width",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeConfigFile(t, tt.content)
			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErrContain)
		})
	}
}
