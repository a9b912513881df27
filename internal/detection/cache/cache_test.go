package cache

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendasalud/senda/pkg/types/analysis"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func comp(id string) *analysis.Composite {
	return &analysis.Composite{ID: id}
}

func TestCache_SetThenGet(t *testing.T) {
	c := New(DefaultConfig())

	assert.Nil(t, c.Get("hola"))

	c.Set("hola", comp("a-1"))
	got := c.Get("hola")
	require.NotNil(t, got)
	assert.Equal(t, "a-1", got.ID)
}

func TestCache_KeyNormalization(t *testing.T) {
	c := New(DefaultConfig())

	// Case, surrounding space and internal whitespace collapse to one key.
	c.Set("  Hola   Mundo ", comp("a-1"))
	got := c.Get("hola mundo")
	require.NotNil(t, got)
	assert.Equal(t, "a-1", got.ID)

	assert.Equal(t, c.Key("HOLA  mundo"), c.Key("hola mundo"))
	assert.NotEqual(t, c.Key("hola mundo"), c.Key("adios mundo"))
}

func TestCache_KeyUsesBoundedPrefix(t *testing.T) {
	c := New(Config{KeyPrefixLen: 10})

	// Content differing only beyond the prefix shares a key.
	assert.Equal(t, c.Key("0123456789 tail one"), c.Key("0123456789 tail two"))
	assert.NotEqual(t, c.Key("0123456789"), c.Key("012345678X"))
}

func TestCache_TTLExpiry(t *testing.T) {
	clock := newFakeClock()
	c := New(Config{TTL: time.Hour}, WithClock(clock.Now))

	c.Set("hola", comp("a-1"))
	require.NotNil(t, c.Get("hola"))

	clock.Advance(time.Hour + time.Second)
	assert.Nil(t, c.Get("hola"))
	// The expired entry was lazily deleted.
	assert.Equal(t, 0, c.Len())
}

func TestCache_EvictsExpiredFirstAtCapacity(t *testing.T) {
	clock := newFakeClock()
	c := New(Config{TTL: time.Hour, Capacity: 10}, WithClock(clock.Now))

	for i := 0; i < 10; i++ {
		c.Set(fmt.Sprintf("mensaje %d", i), comp(fmt.Sprintf("a-%d", i)))
	}
	require.Equal(t, 10, c.Len())

	// Everything is expired; the next insert clears it all.
	clock.Advance(2 * time.Hour)
	c.Set("nuevo mensaje", comp("fresh"))
	assert.Equal(t, 1, c.Len())
	require.NotNil(t, c.Get("nuevo mensaje"))
}

func TestCache_EvictsOldestFractionWhenFull(t *testing.T) {
	clock := newFakeClock()
	c := New(Config{TTL: time.Hour, Capacity: 10, EvictionFraction: 0.20}, WithClock(clock.Now))

	for i := 0; i < 10; i++ {
		c.Set(fmt.Sprintf("mensaje %d", i), comp(fmt.Sprintf("a-%d", i)))
		clock.Advance(time.Second)
	}
	require.Equal(t, 10, c.Len())

	// Nothing expired, so the oldest 20% (2 entries) go.
	c.Set("nuevo mensaje", comp("fresh"))
	assert.Equal(t, 9, c.Len())
	assert.Nil(t, c.Get("mensaje 0"))
	assert.Nil(t, c.Get("mensaje 1"))
	assert.NotNil(t, c.Get("mensaje 2"))
	assert.NotNil(t, c.Get("nuevo mensaje"))
}

func TestCache_OverwriteDoesNotEvict(t *testing.T) {
	clock := newFakeClock()
	c := New(Config{TTL: time.Hour, Capacity: 10}, WithClock(clock.Now))

	for i := 0; i < 10; i++ {
		c.Set(fmt.Sprintf("mensaje %d", i), comp(fmt.Sprintf("a-%d", i)))
	}
	c.Set("mensaje 5", comp("updated"))
	assert.Equal(t, 10, c.Len())

	got := c.Get("mensaje 5")
	require.NotNil(t, got)
	assert.Equal(t, "updated", got.ID)
}

func TestCache_GetOrCompute(t *testing.T) {
	c := New(DefaultConfig())

	var calls atomic.Int32
	compute := func() *analysis.Composite {
		calls.Add(1)
		return comp("computed")
	}

	got := c.GetOrCompute("hola", compute)
	require.NotNil(t, got)
	assert.Equal(t, "computed", got.ID)
	assert.Equal(t, int32(1), calls.Load())

	// Second call hits the cache.
	got = c.GetOrCompute("hola", compute)
	require.NotNil(t, got)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCache_GetOrCompute_ConcurrentSameKey(t *testing.T) {
	c := New(DefaultConfig())

	var calls atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := c.GetOrCompute("mismo contenido", func() *analysis.Composite {
				calls.Add(1)
				time.Sleep(5 * time.Millisecond)
				return comp("shared")
			})
			assert.Equal(t, "shared", got.ID)
		}()
	}
	wg.Wait()

	// Concurrent callers collapse into at most a couple of computations
	// (one per singleflight round).
	assert.LessOrEqual(t, calls.Load(), int32(2))
}

func TestCache_ConcurrentReadWrite(t *testing.T) {
	c := New(Config{Capacity: 50})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("mensaje %d", j%60)
				c.Set(key, comp(fmt.Sprintf("a-%d-%d", n, j)))
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 50)
}
