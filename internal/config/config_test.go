package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, 1000, cfg.Cache.Capacity)
	assert.Equal(t, 0.20, cfg.Cache.EvictionFraction)
	assert.Equal(t, 200, cfg.Cache.KeyPrefixLen)
	assert.Equal(t, 14*24*time.Hour, cfg.Scales.Cooldown)
	assert.Equal(t, 30*24*time.Hour, cfg.Scales.LookbackWindow)
	assert.Equal(t, 6, cfg.Scales.OfferIntensity)
	assert.Equal(t, 8, cfg.Scales.HighPriorityIntensity)
	assert.Equal(t, 3, cfg.Scales.HistoryWindow)
	assert.Equal(t, 10000, cfg.Detection.MaxDistortionInputLen)
}

func TestApplyDefaults_PreservesExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Cache.TTL = 5 * time.Minute
	cfg.Scales.Cooldown = 7 * 24 * time.Hour

	ApplyDefaults(cfg)

	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Scales.Cooldown)
	assert.Equal(t, 1000, cfg.Cache.Capacity)
}

func TestValidate_Failures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero ttl", func(c *Config) { c.Cache.TTL = -time.Second }},
		{"eviction fraction over 1", func(c *Config) { c.Cache.EvictionFraction = 1.5 }},
		{"lookback shorter than cooldown", func(c *Config) { c.Scales.LookbackWindow = time.Hour }},
		{"offer intensity out of range", func(c *Config) { c.Scales.OfferIntensity = 11 }},
		{"high priority below offer", func(c *Config) { c.Scales.HighPriorityIntensity = 2 }},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "senda.yaml")
	body := `
cache:
  ttl: 30m
  capacity: 50
scales:
  cooldown: 168h
log:
  level: debug
  format: console
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 50, cfg.Cache.Capacity)
	assert.Equal(t, 7*24*time.Hour, cfg.Scales.Cooldown)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Unset fields fall back to defaults.
	assert.Equal(t, 0.20, cfg.Cache.EvictionFraction)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadFromEnv_Override(t *testing.T) {
	t.Setenv("SENDA_CACHE_CAPACITY", "25")
	t.Setenv("SENDA_LOG_LEVEL", "warn")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Cache.Capacity)
	assert.Equal(t, "warn", cfg.Log.Level)
}
