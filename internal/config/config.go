// Package config defines all configuration structures for the Senda detection
// engine.  No I/O or parsing logic lives here — only plain data types and
// validation.
package config

import (
	"fmt"
	"time"
)

// DetectionConfig holds tunables for the composite detection pipeline.
type DetectionConfig struct {
	// MaxDistortionInputLen caps the text length scanned by the cognitive
	// distortion detector.  Performance bound, not a behavioral feature.
	MaxDistortionInputLen int `mapstructure:"max_distortion_input_len"`
}

// CacheConfig holds tunables for the in-memory analysis cache.
type CacheConfig struct {
	TTL              time.Duration `mapstructure:"ttl"`
	Capacity         int           `mapstructure:"capacity"`
	EvictionFraction float64       `mapstructure:"eviction_fraction"`
	// KeyPrefixLen is the number of leading normalized characters hashed
	// into the cache key.
	KeyPrefixLen int `mapstructure:"key_prefix_len"`
}

// ScalesConfig holds tunables for the clinical scale engine.
type ScalesConfig struct {
	// Cooldown is the minimum interval between two administrations of the
	// same scale to the same user.
	Cooldown time.Duration `mapstructure:"cooldown"`
	// LookbackWindow bounds how far back administration records are kept.
	LookbackWindow time.Duration `mapstructure:"lookback_window"`
	// OfferIntensity is the minimum emotional intensity (0-10) at which a
	// scale is offered.
	OfferIntensity int `mapstructure:"offer_intensity"`
	// HighPriorityIntensity is the intensity at which a suggestion is
	// escalated from medium to high priority.
	HighPriorityIntensity int `mapstructure:"high_priority_intensity"`
	// HistoryWindow is the number of recent history messages combined with
	// the current message during auto-scoring.
	HistoryWindow int `mapstructure:"history_window"`
}

// RedisConfig holds Redis connection parameters for the administration store.
type RedisConfig struct {
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	KeyPrefix    string        `mapstructure:"key_prefix"`
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format string `mapstructure:"format"` // "json" | "console"
	Output string `mapstructure:"output"`
}

// Config is the root configuration structure.
type Config struct {
	Detection DetectionConfig `mapstructure:"detection"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Scales    ScalesConfig    `mapstructure:"scales"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Log       LogConfig       `mapstructure:"log"`
}

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered; callers should treat any error as
// fatal and refuse to start.
func (c *Config) Validate() error {
	if c.Detection.MaxDistortionInputLen < 1 {
		return fmt.Errorf("config: detection.max_distortion_input_len must be ≥ 1, got %d", c.Detection.MaxDistortionInputLen)
	}

	if c.Cache.TTL <= 0 {
		return fmt.Errorf("config: cache.ttl must be positive, got %s", c.Cache.TTL)
	}
	if c.Cache.Capacity < 1 {
		return fmt.Errorf("config: cache.capacity must be ≥ 1, got %d", c.Cache.Capacity)
	}
	if c.Cache.EvictionFraction <= 0 || c.Cache.EvictionFraction > 1 {
		return fmt.Errorf("config: cache.eviction_fraction %v is out of range (0, 1]", c.Cache.EvictionFraction)
	}
	if c.Cache.KeyPrefixLen < 1 {
		return fmt.Errorf("config: cache.key_prefix_len must be ≥ 1, got %d", c.Cache.KeyPrefixLen)
	}

	if c.Scales.Cooldown <= 0 {
		return fmt.Errorf("config: scales.cooldown must be positive, got %s", c.Scales.Cooldown)
	}
	if c.Scales.LookbackWindow < c.Scales.Cooldown {
		return fmt.Errorf("config: scales.lookback_window %s must be ≥ scales.cooldown %s", c.Scales.LookbackWindow, c.Scales.Cooldown)
	}
	if c.Scales.OfferIntensity < 0 || c.Scales.OfferIntensity > 10 {
		return fmt.Errorf("config: scales.offer_intensity %v is out of range [0, 10]", c.Scales.OfferIntensity)
	}
	if c.Scales.HighPriorityIntensity < c.Scales.OfferIntensity {
		return fmt.Errorf("config: scales.high_priority_intensity %v must be ≥ scales.offer_intensity %v",
			c.Scales.HighPriorityIntensity, c.Scales.OfferIntensity)
	}
	if c.Scales.HistoryWindow < 0 {
		return fmt.Errorf("config: scales.history_window must be ≥ 0, got %d", c.Scales.HistoryWindow)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	return nil
}
