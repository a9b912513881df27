// Package cache provides the in-process analysis cache: a TTL'd map keyed by
// a fast non-cryptographic hash of normalized message content.  It is a pure
// performance layer; the detection engine remains the source of truth and a
// cold cache only costs recomputation.
package cache

import (
	"hash/fnv"
	"sort"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/sendasalud/senda/internal/detection/match"
	"github.com/sendasalud/senda/internal/infrastructure/monitoring/prometheus"
	"github.com/sendasalud/senda/pkg/types/analysis"
)

// Config holds the cache tunables.
type Config struct {
	// TTL is how long an entry stays valid after insertion.
	TTL time.Duration
	// Capacity is the maximum number of entries before a cleanup pass.
	Capacity int
	// EvictionFraction is the share of oldest entries removed when a
	// cleanup pass finds the cache still full after dropping expired ones.
	EvictionFraction float64
	// KeyPrefixLen is how many leading characters of normalized content
	// feed the key hash.
	KeyPrefixLen int
}

// DefaultConfig returns the production defaults: 1 hour TTL, 1000 entries,
// 20% eviction, 200-character key prefix.
func DefaultConfig() Config {
	return Config{
		TTL:              time.Hour,
		Capacity:         1000,
		EvictionFraction: 0.20,
		KeyPrefixLen:     200,
	}
}

type entry struct {
	comp       *analysis.Composite
	insertedAt time.Time
}

// AnalysisCache is a concurrency-safe TTL cache for composite analyses.
// Construct with New; the zero value is not usable.
type AnalysisCache struct {
	cfg     Config
	metrics *prometheus.DetectionMetrics
	now     func() time.Time

	mu      sync.Mutex
	entries map[uint64]entry

	group singleflight.Group
}

// Option configures an AnalysisCache.
type Option func(*AnalysisCache)

// WithMetrics attaches cache hit/miss/eviction counters.
func WithMetrics(m *prometheus.DetectionMetrics) Option {
	return func(c *AnalysisCache) { c.metrics = m }
}

// WithClock overrides the time source.  Tests only.
func WithClock(now func() time.Time) Option {
	return func(c *AnalysisCache) { c.now = now }
}

// New constructs an analysis cache.
func New(cfg Config, opts ...Option) *AnalysisCache {
	def := DefaultConfig()
	if cfg.TTL <= 0 {
		cfg.TTL = def.TTL
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = def.Capacity
	}
	if cfg.EvictionFraction <= 0 || cfg.EvictionFraction > 1 {
		cfg.EvictionFraction = def.EvictionFraction
	}
	if cfg.KeyPrefixLen <= 0 {
		cfg.KeyPrefixLen = def.KeyPrefixLen
	}
	c := &AnalysisCache{
		cfg:     cfg,
		now:     time.Now,
		entries: make(map[uint64]entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key hashes message content into a cache key: FNV-1a over the first
// KeyPrefixLen characters of the normalized content.  Messages differing
// only beyond the prefix share a key; that is an accepted trade-off for a
// bounded, allocation-light hash.
func (c *AnalysisCache) Key(content string) uint64 {
	text := match.Normalize(content)
	if n := c.cfg.KeyPrefixLen; n > 0 {
		count := 0
		for i := range text {
			if count == n {
				text = text[:i]
				break
			}
			count++
		}
	}
	h := fnv.New64a()
	h.Write([]byte(text))
	return h.Sum64()
}

// Get returns the cached analysis for the content, or nil on a miss.  An
// expired entry counts as a miss and is lazily deleted.
func (c *AnalysisCache) Get(content string) *analysis.Composite {
	key := c.Key(content)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.miss()
		return nil
	}
	if c.now().Sub(e.insertedAt) >= c.cfg.TTL {
		delete(c.entries, key)
		c.miss()
		return nil
	}
	c.hit()
	return e.comp
}

// Set stores the analysis for the content.  When the cache is at capacity a
// cleanup pass first drops every expired entry; if it is still full, the
// oldest EvictionFraction of entries by insertion time are removed.
func (c *AnalysisCache) Set(content string, comp *analysis.Composite) {
	if comp == nil {
		return
	}
	key := c.Key(content)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.cfg.Capacity {
		c.cleanupLocked()
	}
	c.entries[key] = entry{comp: comp, insertedAt: c.now()}
}

// GetOrCompute returns the cached analysis or runs compute once per key,
// collapsing concurrent computations for identical content.
func (c *AnalysisCache) GetOrCompute(content string, compute func() *analysis.Composite) *analysis.Composite {
	if comp := c.Get(content); comp != nil {
		return comp
	}

	flightKey := strconv.FormatUint(c.Key(content), 16)
	v, _, _ := c.group.Do(flightKey, func() (interface{}, error) {
		if comp := c.Get(content); comp != nil {
			return comp, nil
		}
		comp := compute()
		c.Set(content, comp)
		return comp, nil
	})
	comp, _ := v.(*analysis.Composite)
	return comp
}

// Len returns the current entry count.
func (c *AnalysisCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// cleanupLocked drops expired entries and, if the cache is still full,
// evicts the oldest EvictionFraction of entries.  Caller holds c.mu.
func (c *AnalysisCache) cleanupLocked() {
	now := c.now()
	evicted := 0
	for key, e := range c.entries {
		if now.Sub(e.insertedAt) >= c.cfg.TTL {
			delete(c.entries, key)
			evicted++
		}
	}

	if len(c.entries) >= c.cfg.Capacity {
		type aged struct {
			key        uint64
			insertedAt time.Time
		}
		all := make([]aged, 0, len(c.entries))
		for key, e := range c.entries {
			all = append(all, aged{key: key, insertedAt: e.insertedAt})
		}
		sort.Slice(all, func(i, j int) bool {
			return all[i].insertedAt.Before(all[j].insertedAt)
		})

		drop := int(float64(c.cfg.Capacity) * c.cfg.EvictionFraction)
		if drop < 1 {
			drop = 1
		}
		if drop > len(all) {
			drop = len(all)
		}
		for _, a := range all[:drop] {
			delete(c.entries, a.key)
			evicted++
		}
	}

	if c.metrics != nil && evicted > 0 {
		c.metrics.CacheEvictionsTotal.Add(float64(evicted))
	}
}

func (c *AnalysisCache) hit() {
	if c.metrics != nil {
		c.metrics.CacheHitsTotal.Inc()
	}
}

func (c *AnalysisCache) miss() {
	if c.metrics != nil {
		c.metrics.CacheMissesTotal.Inc()
	}
}
