package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dashwright/dashwright/pkg/adapters/redis"
	"github.com/dashwright/dashwright/pkg/ports"
)

func newTestCache(t *testing.T, opts ...redis.Option) (*redis.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err, "Failed to start miniredis")
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return redis.NewFromClient(client, opts...), mr
}

func TestRedisCache_Contract(t *testing.T) {
	cache, _ := newTestCache(t)
	ports.RunArtifactCacheContract(t, cache)
}

func TestRedisCache_TTL(t *testing.T) {
	cache, mr := newTestCache(t, redis.WithTTL(time.Minute))
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "leaf-hash", ports.Artifact("<figure/>")))

	// miniredis lets us advance the clock past the TTL.
	mr.FastForward(2 * time.Minute)

	_, ok, err := cache.Get(ctx, "leaf-hash")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_Prefix(t *testing.T) {
	cache, mr := newTestCache(t, redis.WithPrefix("custom:"))
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "abc", ports.Artifact("x")))
	assert.True(t, mr.Exists("custom:abc"))
}
