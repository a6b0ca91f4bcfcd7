package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/secretswap/router/domain/cache"
)

func TestCache_TTLWithFakeClock(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	c := cache.NewWithClock(clock)

	c.Set("snapshot", 42, 2*time.Second)

	value, found := c.Get("snapshot")
	require.True(t, found)
	require.Equal(t, 42, value)

	// Advance past the TTL.
	now = now.Add(3 * time.Second)

	_, found = c.Get("snapshot")
	require.False(t, found)

	// Expired entry is evicted on read.
	require.Equal(t, 0, c.Len())
}

func TestCache_SetOverwritesAndRefreshesTTL(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	c := cache.NewWithClock(clock)

	c.Set("key", "old", time.Second)
	now = now.Add(900 * time.Millisecond)
	c.Set("key", "new", time.Second)
	now = now.Add(900 * time.Millisecond)

	value, found := c.Get("key")
	require.True(t, found)
	require.Equal(t, "new", value)
}

func TestCache_Delete(t *testing.T) {
	c := cache.New()

	c.Set("key", 1, time.Minute)
	c.Delete("key")

	_, found := c.Get("key")
	require.False(t, found)
}
