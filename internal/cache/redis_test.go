package cache

import (
	"context"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/contenthub/contenthub-server/pkg/metrics"
)

type item struct {
	Title string `json:"title"`
	Words int    `json:"words"`
}

func TestRedisCache_SetGetDelete(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	c := NewRedisCache(client, "test:cache:", 5*time.Second)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "featured", []item{{Title: "a", Words: 3}}))
	require.True(t, m.Exists("test:cache:featured"))

	var got []item
	require.NoError(t, c.Get(ctx, "featured", &got))
	require.Equal(t, []item{{Title: "a", Words: 3}}, got)

	require.NoError(t, c.Delete(ctx, "featured", "latest"))
	require.ErrorIs(t, c.Get(ctx, "featured", &got), ErrMiss)
}

func TestRedisCache_TTLExpiry(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	c := NewRedisCache(client, "", time.Second)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "latest", item{Title: "x"}))
	var got item
	require.NoError(t, c.Get(ctx, "latest", &got))

	// advance miniredis clock past TTL
	m.FastForward(2 * time.Second)
	require.ErrorIs(t, c.Get(ctx, "latest", &got), ErrMiss)
}

func TestRedisCache_CountsHitsAndMisses(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	c := NewRedisCache(redis.NewClient(&redis.Options{Addr: m.Addr()}), "metrics:", time.Minute)
	ctx := context.Background()
	hits := testutil.ToFloat64(metrics.CacheLookups.WithLabelValues("counted", "hit"))
	misses := testutil.ToFloat64(metrics.CacheLookups.WithLabelValues("counted", "miss"))

	var got item
	require.ErrorIs(t, c.Get(ctx, "counted", &got), ErrMiss)
	require.NoError(t, c.Set(ctx, "counted", item{Title: "y"}))
	require.NoError(t, c.Get(ctx, "counted", &got))

	require.Equal(t, hits+1, testutil.ToFloat64(metrics.CacheLookups.WithLabelValues("counted", "hit")))
	require.Equal(t, misses+1, testutil.ToFloat64(metrics.CacheLookups.WithLabelValues("counted", "miss")))
}
