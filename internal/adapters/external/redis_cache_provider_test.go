package external

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherhistory.app/internal/config"
	"weatherhistory.app/internal/ports"
	"weatherhistory.app/pkg/errors"
)

func setupMiniRedis(t *testing.T) (*miniredis.Miniredis, *RedisCacheProviderAdapter) {
	t.Helper()

	server := miniredis.RunT(t)
	adapter, err := NewRedisCacheProviderAdapter(&config.RedisConfig{
		Addr:         server.Addr(),
		DialTimeout:  5,
		ReadTimeout:  3,
		WriteTimeout: 3,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = adapter.Close() })

	return server, adapter
}

func TestNewRedisCacheProviderAdapter(t *testing.T) {
	t.Run("NilConfig", func(t *testing.T) {
		adapter, err := NewRedisCacheProviderAdapter(nil)
		assert.Nil(t, adapter)
		assert.True(t, errors.IsConfigurationError(err))
	})

	t.Run("Unreachable", func(t *testing.T) {
		adapter, err := NewRedisCacheProviderAdapter(&config.RedisConfig{
			Addr:        "127.0.0.1:1",
			DialTimeout: 1,
			ReadTimeout: 1,
		})
		assert.Nil(t, adapter)
		assert.True(t, errors.IsExternalAPIError(err))
	})
}

func TestRedisCacheProviderAdapter_Operations(t *testing.T) {
	server, adapter := setupMiniRedis(t)
	ctx := context.Background()
	payload := []byte(`{"city":{"name":"London"}}`)

	require.NoError(t, adapter.Set(ctx, "forecast:name:london", payload, time.Minute))
	assert.True(t, server.Exists("weatherhistory:forecast:name:london"))

	got, err := adapter.Get(ctx, "forecast:name:london")
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	exists, err := adapter.Exists(ctx, "forecast:name:london")
	require.NoError(t, err)
	assert.True(t, exists)

	server.FastForward(2 * time.Minute)
	_, err = adapter.Get(ctx, "forecast:name:london")
	assert.True(t, errors.IsNotFoundError(err))

	require.NoError(t, adapter.Set(ctx, "air:1.0000,2.0000", payload, time.Minute))
	require.NoError(t, adapter.Delete(ctx, "air:1.0000,2.0000"))
	exists, err = adapter.Exists(ctx, "air:1.0000,2.0000")
	require.NoError(t, err)
	assert.False(t, exists)

	stats := adapter.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 0.5, stats.HitRatio)
}

func TestRedisCacheProviderAdapter_ClearKeepsForeignKeys(t *testing.T) {
	server, adapter := setupMiniRedis(t)
	ctx := context.Background()

	require.NoError(t, server.Set("session:42", "other-app"))
	require.NoError(t, adapter.Set(ctx, "forecast:name:kyiv", []byte("{}"), time.Minute))
	require.NoError(t, adapter.Set(ctx, "geo:reverse:50.4500,30.5200", []byte("[]"), time.Minute))

	require.NoError(t, adapter.Clear(ctx))

	assert.True(t, server.Exists("session:42"))
	assert.False(t, server.Exists("weatherhistory:forecast:name:kyiv"))
	assert.False(t, server.Exists("weatherhistory:geo:reverse:50.4500,30.5200"))
}

func TestRedisCacheProviderAdapter_Validation(t *testing.T) {
	_, adapter := setupMiniRedis(t)
	ctx := context.Background()

	_, err := adapter.Get(ctx, "")
	assert.True(t, errors.IsValidationError(err))
	assert.True(t, errors.IsValidationError(adapter.Set(ctx, "k", nil, time.Minute)))
	assert.True(t, errors.IsValidationError(adapter.Set(ctx, "k", []byte("v"), 0)))
	assert.True(t, errors.IsValidationError(adapter.Delete(ctx, "")))
}

func TestRedisCacheProviderAdapter_Ping(t *testing.T) {
	server, adapter := setupMiniRedis(t)

	assert.NoError(t, adapter.Ping(context.Background()))

	server.Close()
	assert.Error(t, adapter.Ping(context.Background()))
}

func TestRedisCacheProviderAdapter_Interfaces(t *testing.T) {
	_, adapter := setupMiniRedis(t)

	var _ ports.CacheProvider = adapter
	var _ ports.CacheMetrics = adapter
}
