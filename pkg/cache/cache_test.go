package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time { return f.t }

func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(t *testing.T, c *LRUCache, clock *fakeClock)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("a", []byte("1"))
				clock.advance(500 * time.Millisecond)

				v, ok := c.Get("a")
				require.True(t, ok)
				assert.Equal(t, "1", string(v))
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("a", []byte("1"))
				clock.advance(2 * time.Second)

				_, ok := c.Get("a")
				assert.False(t, ok)
				assert.Equal(t, 0, c.Size())
			},
		},
		{
			name:     "evict least recently used",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache, _ *fakeClock) {
				c.Set("a", []byte("1"))
				c.Set("b", []byte("2"))
				c.Get("a")
				c.Set("c", []byte("3"))

				_, ok := c.Get("b")
				assert.False(t, ok, "b should be evicted")
				_, ok = c.Get("a")
				assert.True(t, ok)
				_, ok = c.Get("c")
				assert.True(t, ok)
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("a", []byte("1"))
				clock.advance(800 * time.Millisecond)
				c.Set("a", []byte("2"))
				clock.advance(800 * time.Millisecond)

				v, ok := c.Get("a")
				require.True(t, ok)
				assert.Equal(t, "2", string(v))
				assert.Equal(t, 1, c.Size())
			},
		},
		{
			name:     "delete",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache, _ *fakeClock) {
				c.Set("a", []byte("1"))
				c.Delete("a")
				c.Delete("missing")

				_, ok := c.Get("a")
				assert.False(t, ok)
			},
		},
		{
			name:     "purge removes only expired",
			capacity: 3,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache, clock *fakeClock) {
				c.Set("a", []byte("1"))
				clock.advance(600 * time.Millisecond)
				c.Set("b", []byte("2"))
				clock.advance(600 * time.Millisecond)

				assert.Equal(t, 1, c.purgeExpired())
				assert.Equal(t, 1, c.Size())
			},
		},
		{
			name:     "hit ratio",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache, _ *fakeClock) {
				assert.Zero(t, c.Ratio())

				c.Set("a", []byte("1"))
				c.Get("a")
				c.Get("a")
				c.Get("a")
				c.Get("b")

				assert.InDelta(t, 0.75, c.Ratio(), 1e-9)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{t: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
			c := NewLRUCache(tt.capacity, tt.ttl, withClock(clock.now))
			tt.actions(t, c, clock)
		})
	}
}

func TestLRUCache_StartStopsWithContext(t *testing.T) {
	c := NewLRUCache(2, time.Millisecond, WithJanitorInterval(5*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, c.Start(ctx))

	c.Set("a", []byte("1"))
	assert.Eventually(t, func() bool { return c.Size() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
}
