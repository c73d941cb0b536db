package cache_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langkit/pkg/cache"
)

func TestLoadingCache_Basic(t *testing.T) {
	t.Run("set and get", func(t *testing.T) {
		c := cache.New[string, int]()

		c.Set("a", 1)
		c.Set("b", 2)

		val, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 1, val)

		val, ok = c.Get("b")
		assert.True(t, ok)
		assert.Equal(t, 2, val)
	})

	t.Run("get missing key", func(t *testing.T) {
		c := cache.New[string, int]()

		val, ok := c.Get("missing")
		assert.False(t, ok)
		assert.Equal(t, 0, val)
	})

	t.Run("set overwrites existing value", func(t *testing.T) {
		c := cache.New[string, int]()

		c.Set("a", 1)
		c.Set("a", 10)

		val, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 10, val)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("remove", func(t *testing.T) {
		c := cache.New[string, int]()

		c.Set("a", 1)

		val, ok := c.Remove("a")
		assert.True(t, ok)
		assert.Equal(t, 1, val)

		_, ok = c.Get("a")
		assert.False(t, ok)

		_, ok = c.Remove("a")
		assert.False(t, ok)
	})

	t.Run("keys", func(t *testing.T) {
		c := cache.New[string, int]()

		c.Set("a", 1)
		c.Set("b", 2)

		assert.ElementsMatch(t, []string{"a", "b"}, c.Keys())
	})

	t.Run("clear", func(t *testing.T) {
		c := cache.New[string, int]()

		c.Set("a", 1)
		c.Set("b", 2)
		c.Clear()

		assert.Equal(t, 0, c.Len())
		_, ok := c.Get("a")
		assert.False(t, ok)
	})
}

func TestLoadingCache_Capacity(t *testing.T) {
	t.Run("evicts least recently used", func(t *testing.T) {
		c := cache.New[string, int](cache.WithCapacity[string, int](2))

		c.Set("a", 1)
		c.Set("b", 2)

		// Touch "a" so "b" becomes the eviction candidate.
		_, ok := c.Get("a")
		require.True(t, ok)

		c.Set("c", 3)

		_, ok = c.Get("b")
		assert.False(t, ok)

		_, ok = c.Get("a")
		assert.True(t, ok)
		_, ok = c.Get("c")
		assert.True(t, ok)
	})

	t.Run("evict callback runs on eviction", func(t *testing.T) {
		var evicted []string
		c := cache.New[string, int](
			cache.WithCapacity[string, int](1),
			cache.WithEvictCallback[string, int](func(key string, _ int) {
				evicted = append(evicted, key)
			}),
		)

		c.Set("a", 1)
		c.Set("b", 2)

		assert.Equal(t, []string{"a"}, evicted)
	})
}

func TestLoadingCache_TTL(t *testing.T) {
	t.Run("entries expire after ttl", func(t *testing.T) {
		c := cache.New[string, int](cache.WithTTL[string, int](20 * time.Millisecond))

		c.Set("a", 1)

		val, ok := c.Get("a")
		require.True(t, ok)
		require.Equal(t, 1, val)

		time.Sleep(30 * time.Millisecond)

		_, ok = c.Get("a")
		assert.False(t, ok)
	})

	t.Run("zero ttl keeps entries forever", func(t *testing.T) {
		c := cache.New[string, int]()

		c.Set("a", 1)
		time.Sleep(10 * time.Millisecond)

		_, ok := c.Get("a")
		assert.True(t, ok)
	})

	t.Run("set resets expiry", func(t *testing.T) {
		c := cache.New[string, int](cache.WithTTL[string, int](30 * time.Millisecond))

		c.Set("a", 1)
		time.Sleep(20 * time.Millisecond)
		c.Set("a", 2)
		time.Sleep(20 * time.Millisecond)

		val, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 2, val)
	})
}

func TestLoadingCache_GetOrLoad(t *testing.T) {
	t.Run("loads on miss and caches result", func(t *testing.T) {
		var calls int
		c := cache.New[string, int](cache.WithLoader[string, int](func(_ context.Context, key string) (int, error) {
			calls++
			return len(key), nil
		}))

		val, err := c.GetOrLoad(context.Background(), "abc")
		require.NoError(t, err)
		assert.Equal(t, 3, val)
		assert.Equal(t, 1, calls)

		// Second call is served from cache.
		val, err = c.GetOrLoad(context.Background(), "abc")
		require.NoError(t, err)
		assert.Equal(t, 3, val)
		assert.Equal(t, 1, calls)
	})

	t.Run("returns cached value without calling loader", func(t *testing.T) {
		var calls int
		c := cache.New[string, int](cache.WithLoader[string, int](func(_ context.Context, _ string) (int, error) {
			calls++
			return 0, nil
		}))

		c.Set("a", 42)

		val, err := c.GetOrLoad(context.Background(), "a")
		require.NoError(t, err)
		assert.Equal(t, 42, val)
		assert.Equal(t, 0, calls)
	})

	t.Run("loader error is returned and not cached", func(t *testing.T) {
		loadErr := errors.New("backend unavailable")
		var calls int
		c := cache.New[string, int](cache.WithLoader[string, int](func(_ context.Context, _ string) (int, error) {
			calls++
			return 0, loadErr
		}))

		_, err := c.GetOrLoad(context.Background(), "a")
		assert.ErrorIs(t, err, loadErr)

		_, err = c.GetOrLoad(context.Background(), "a")
		assert.ErrorIs(t, err, loadErr)
		assert.Equal(t, 2, calls)
	})

	t.Run("no loader behaves like plain lookup", func(t *testing.T) {
		c := cache.New[string, int]()

		val, err := c.GetOrLoad(context.Background(), "missing")
		require.NoError(t, err)
		assert.Equal(t, 0, val)
	})

	t.Run("reloads after expiry", func(t *testing.T) {
		var calls int
		c := cache.New[string, int](
			cache.WithTTL[string, int](20*time.Millisecond),
			cache.WithLoader[string, int](func(_ context.Context, _ string) (int, error) {
				calls++
				return calls, nil
			}),
		)

		val, err := c.GetOrLoad(context.Background(), "a")
		require.NoError(t, err)
		assert.Equal(t, 1, val)

		time.Sleep(30 * time.Millisecond)

		val, err = c.GetOrLoad(context.Background(), "a")
		require.NoError(t, err)
		assert.Equal(t, 2, val)
	})
}

func TestLoadingCache_Concurrency(t *testing.T) {
	t.Run("concurrent access is safe", func(t *testing.T) {
		c := cache.New[int, int](
			cache.WithCapacity[int, int](50),
			cache.WithLoader[int, int](func(_ context.Context, key int) (int, error) {
				return key * 2, nil
			}),
		)

		var wg sync.WaitGroup
		for i := range 100 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				val, err := c.GetOrLoad(context.Background(), i%10)
				assert.NoError(t, err)
				assert.Equal(t, (i%10)*2, val)
			}()
		}
		wg.Wait()
	})
}
