package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/tweetflow/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunContentCacheContract runs a suite of tests to verify that a ContentCache
// implementation adheres to the defined interface contract.
func RunContentCacheContract(t *testing.T, cache ContentCache) {
	ctx := context.Background()
	key := "contract-test-" + time.Now().Format("20060102150405")

	t.Run("Set and Get", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, key, "🚀 Exciting insights"))

		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "🚀 Exciting insights", got)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, key, "first"))
		require.NoError(t, cache.Set(ctx, key, "second"))

		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "second", got)
	})

	t.Run("Get Missing", func(t *testing.T) {
		_, err := cache.Get(ctx, "missing-"+key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, key, "value"))
		require.NoError(t, cache.Delete(ctx, key))

		_, err := cache.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss, "Get after Delete should return ErrCacheMiss")

		assert.NoError(t, cache.Delete(ctx, key), "deleting twice is fine")
	})
}
