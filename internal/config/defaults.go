package config

import "time"

// Defaults for every tunable.  The detection-side values (cache TTL, scale
// cooldown, intensity thresholds) reproduce the product's established
// behavior; change them only deliberately.
const (
	DefaultMaxDistortionInputLen = 10000

	DefaultCacheTTL              = time.Hour
	DefaultCacheCapacity         = 1000
	DefaultCacheEvictionFraction = 0.20
	DefaultCacheKeyPrefixLen     = 200

	DefaultScaleCooldown         = 14 * 24 * time.Hour
	DefaultScaleLookbackWindow   = 30 * 24 * time.Hour
	DefaultOfferIntensity        = 6
	DefaultHighPriorityIntensity = 8
	DefaultScaleHistoryWindow    = 3
)

// ApplyDefaults fills every zero-valued field of cfg with its default.
// Explicitly configured values are left untouched.
func ApplyDefaults(cfg *Config) {
	if cfg.Detection.MaxDistortionInputLen == 0 {
		cfg.Detection.MaxDistortionInputLen = DefaultMaxDistortionInputLen
	}

	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = DefaultCacheTTL
	}
	if cfg.Cache.Capacity == 0 {
		cfg.Cache.Capacity = DefaultCacheCapacity
	}
	if cfg.Cache.EvictionFraction == 0 {
		cfg.Cache.EvictionFraction = DefaultCacheEvictionFraction
	}
	if cfg.Cache.KeyPrefixLen == 0 {
		cfg.Cache.KeyPrefixLen = DefaultCacheKeyPrefixLen
	}

	if cfg.Scales.Cooldown == 0 {
		cfg.Scales.Cooldown = DefaultScaleCooldown
	}
	if cfg.Scales.LookbackWindow == 0 {
		cfg.Scales.LookbackWindow = DefaultScaleLookbackWindow
	}
	if cfg.Scales.OfferIntensity == 0 {
		cfg.Scales.OfferIntensity = DefaultOfferIntensity
	}
	if cfg.Scales.HighPriorityIntensity == 0 {
		cfg.Scales.HighPriorityIntensity = DefaultHighPriorityIntensity
	}
	if cfg.Scales.HistoryWindow == 0 {
		cfg.Scales.HistoryWindow = DefaultScaleHistoryWindow
	}

	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.Redis.PoolSize == 0 {
		cfg.Redis.PoolSize = 10
	}
	if cfg.Redis.DialTimeout == 0 {
		cfg.Redis.DialTimeout = 5 * time.Second
	}
	if cfg.Redis.ReadTimeout == 0 {
		cfg.Redis.ReadTimeout = 3 * time.Second
	}
	if cfg.Redis.WriteTimeout == 0 {
		cfg.Redis.WriteTimeout = 3 * time.Second
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = "senda:"
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
}

// Default returns a Config populated entirely with defaults.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
