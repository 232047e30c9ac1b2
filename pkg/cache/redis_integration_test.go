//go:build integration

package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/babel/pkg/cache"
	"github.com/dmitrymomot/babel/pkg/redis"
)

func newRedisClient(t *testing.T) goredis.UniversalClient {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = "redis://localhost:6379/0"
	}
	client, err := redis.Open(context.Background(), url, redis.WithRetry(1, 0))
	if err != nil {
		t.Skipf("redis unavailable: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedis(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client := newRedisClient(t)

	c := cache.NewRedis[[]byte](client, cache.Raw{}, cache.WithPrefix("babel-test:"+t.Name()))
	t.Cleanup(func() { _ = c.Clear(ctx) })

	_, err := c.Get(ctx, "en.json")
	require.ErrorIs(t, err, cache.ErrNotFound)

	require.NoError(t, c.Set(ctx, "en.json", []byte(`{"hi":"Hello"}`), time.Minute))
	v, err := c.Get(ctx, "en.json")
	require.NoError(t, err)
	require.Equal(t, `{"hi":"Hello"}`, string(v))

	require.NoError(t, c.Set(ctx, "de.json", []byte(`{}`), 0))
	require.NoError(t, c.Clear(ctx))
	_, err = c.Get(ctx, "de.json")
	require.ErrorIs(t, err, cache.ErrNotFound)

	loaded, err := cache.GetOrSet(ctx, c, "fr.json", func(context.Context) ([]byte, time.Duration, error) {
		return []byte(`{"hi":"Bonjour"}`), time.Minute, nil
	})
	require.NoError(t, err)
	require.Equal(t, `{"hi":"Bonjour"}`, string(loaded))

	require.NoError(t, c.Delete(ctx, "fr.json"))
	_, err = c.Get(ctx, "fr.json")
	require.ErrorIs(t, err, cache.ErrNotFound)
}
