// Package config provides configuration loading, defaults, and validation for
// the Senda detection engine.
package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix used by all settings.
const envPrefix = "SENDA"

// newViper builds a pre-configured Viper instance: YAML file type, SENDA_ env
// prefix, automatic env binding, and a key replacer that maps "." → "_" so
// that nested keys like "cache.ttl" resolve to "SENDA_CACHE_TTL".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	registerDefaults(v)
	return v
}

// registerDefaults seeds every key into viper so that AutomaticEnv can
// resolve SENDA_* overrides even when no config file is present.  The values
// mirror ApplyDefaults.
func registerDefaults(v *viper.Viper) {
	v.SetDefault("detection.max_distortion_input_len", DefaultMaxDistortionInputLen)

	v.SetDefault("cache.ttl", DefaultCacheTTL)
	v.SetDefault("cache.capacity", DefaultCacheCapacity)
	v.SetDefault("cache.eviction_fraction", DefaultCacheEvictionFraction)
	v.SetDefault("cache.key_prefix_len", DefaultCacheKeyPrefixLen)

	v.SetDefault("scales.cooldown", DefaultScaleCooldown)
	v.SetDefault("scales.lookback_window", DefaultScaleLookbackWindow)
	v.SetDefault("scales.offer_intensity", DefaultOfferIntensity)
	v.SetDefault("scales.high_priority_intensity", DefaultHighPriorityIntensity)
	v.SetDefault("scales.history_window", DefaultScaleHistoryWindow)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "senda:")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", "stdout")
}

// Load reads the YAML file at configPath, merges any SENDA_* environment
// variable overrides, applies defaults for unset fields, and validates the
// result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from SENDA_* environment variables,
// with no config file required.  Preferred for containerised deployments.
func LoadFromEnv() (*Config, error) {
	v := newViper()
	return unmarshalAndFinalize(v)
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// Watch monitors configPath for changes and invokes onChange with the newly
// parsed Config whenever the file is modified on disk.  Intended for
// hot-reloading the safe subset of settings (log level, cache TTL); callers
// decide which changes to apply at runtime.
//
// Watch is non-blocking; the watching goroutine is managed by viper.  A
// changed file that fails to parse or validate does not trigger onChange.
func Watch(configPath string, onChange func(*Config)) {
	v := newViper()
	v.SetConfigFile(configPath)

	// Initial read — errors ignored here; callers should call Load first.
	_ = v.ReadInConfig()

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			return
		}
		onChange(cfg)
	})
}

// MustLoad is a convenience wrapper around Load that panics on any error.
// Intended for main(), where a config-load failure is always fatal.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}
