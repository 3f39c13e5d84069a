package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunArtifactCacheContract runs a suite of tests to verify that an
// ArtifactCache implementation adheres to the defined interface contract.
func RunArtifactCacheContract(t *testing.T, cache ArtifactCache) {
	ctx := context.Background()
	key := "contract-test-" + time.Now().Format("20060102150405")

	t.Run("Put and Get", func(t *testing.T) {
		err := cache.Put(ctx, key, Artifact("<figure>demo</figure>"))
		require.NoError(t, err, "Put should not return error")

		got, ok, err := cache.Get(ctx, key)
		require.NoError(t, err, "Get should not return error")
		require.True(t, ok, "Get should find a just-stored artifact")
		assert.Equal(t, Artifact("<figure>demo</figure>"), got)
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, ok, err := cache.Get(ctx, "missing-"+key)
		require.NoError(t, err)
		assert.False(t, ok, "missing keys report ok=false, not an error")
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, key, Artifact("v1")))
		require.NoError(t, cache.Put(ctx, key, Artifact("v2")))

		got, ok, err := cache.Get(ctx, key)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, Artifact("v2"), got)
	})
}
