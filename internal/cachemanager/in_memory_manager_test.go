package cachemanager

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type renderKey string

type rendered struct {
	Key  string
	Body string
}

func newRenderCache() *InMemoryCacheManager[renderKey, rendered] {
	return NewInMemoryCacheManager[renderKey, rendered]("render", DefaultExpiration, DefaultCleanupInterval)
}

func TestInMemoryCacheManager_GetExistingValue(t *testing.T) {
	cache := newRenderCache()
	want := rendered{Key: "home", Body: "# Welcome"}
	cache.Set(context.Background(), "home|80|dark", want, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "home|80|dark")
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestInMemoryCacheManager_GetMissing(t *testing.T) {
	cache := newRenderCache()

	got, ok := cache.Get(context.Background(), "home|80|dark")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_GetWrongType(t *testing.T) {
	cache := newRenderCache()
	cache.cache.Set("home|80|dark", 123, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "home|80|dark")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_KeysAreDistinctPerWidth(t *testing.T) {
	cache := newRenderCache()
	cache.Set(context.Background(), "home|80|dark", rendered{Body: "wide"}, DefaultExpiration)

	_, ok := cache.Get(context.Background(), "home|40|dark")
	require.False(t, ok)
}

func TestInMemoryCacheManager_GetWithRefresh(t *testing.T) {
	cache := newRenderCache()

	_, ok := cache.GetWithRefresh(context.Background(), "kpis", time.Hour)
	require.False(t, ok)

	cache.Set(context.Background(), "kpis", rendered{Body: "soon"}, time.Minute)
	got, ok := cache.GetWithRefresh(context.Background(), "kpis", time.Hour)
	require.True(t, ok)
	require.Equal(t, "soon", got.Body)
}

func TestInMemoryCacheManager_Expires(t *testing.T) {
	cache := newRenderCache()
	cache.Set(context.Background(), "home", rendered{Body: "x"}, time.Millisecond)

	require.Eventually(t, func() bool {
		_, ok := cache.Get(context.Background(), "home")
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestInMemoryCacheManager_Delete(t *testing.T) {
	cache := newRenderCache()
	require.NoError(t, cache.Delete(context.Background()))

	cache.Set(context.Background(), "home", rendered{Body: "x"}, DefaultExpiration)
	cache.Set(context.Background(), "kpis", rendered{Body: "y"}, DefaultExpiration)
	require.Equal(t, 2, cache.Len())

	require.NoError(t, cache.Delete(context.Background(), "home"))

	_, ok := cache.Get(context.Background(), "home")
	require.False(t, ok)
	_, ok = cache.Get(context.Background(), "kpis")
	require.True(t, ok)
	require.Equal(t, 1, cache.Len())
}

func TestInMemoryCacheManager_Flush(t *testing.T) {
	cache := newRenderCache()
	cache.Set(context.Background(), "home", rendered{Body: "x"}, DefaultExpiration)

	require.NoError(t, cache.Flush(context.Background()))

	_, ok := cache.Get(context.Background(), "home")
	require.False(t, ok)
	require.Zero(t, cache.Len())
}
