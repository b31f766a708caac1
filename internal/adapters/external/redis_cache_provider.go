package external

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"weatherhistory.app/internal/config"
	"weatherhistory.app/internal/ports"
	"weatherhistory.app/pkg/errors"
)

const weatherKeyPrefix = "weatherhistory:"

// RedisCacheProviderAdapter implements CacheProvider port using Redis
type RedisCacheProviderAdapter struct {
	client    *redis.Client
	keyPrefix string
	stats     struct {
		hits       int64
		misses     int64
		operations int64
		mutex      sync.RWMutex
	}
}

// NewRedisCacheProviderAdapter connects to Redis and verifies the connection with a ping
func NewRedisCacheProviderAdapter(config *config.RedisConfig) (*RedisCacheProviderAdapter, error) {
	if config == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  time.Duration(config.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewExternalAPIError("failed to connect to Redis", err)
	}

	return &RedisCacheProviderAdapter{
		client:    client,
		keyPrefix: weatherKeyPrefix,
	}, nil
}

// key namespaces entries so Clear never touches foreign keys in a shared database
func (r *RedisCacheProviderAdapter) key(key string) string {
	return r.keyPrefix + key
}

// Get retrieves a value from Redis cache
func (r *RedisCacheProviderAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	val, err := r.client.Get(ctx, r.key(key)).Result()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			r.recordMiss()
			return nil, errors.NewNotFoundError("cache miss")
		}
		return nil, errors.NewExternalAPIError("redis get operation failed", err)
	}

	r.recordHit()
	return []byte(val), nil
}

// Set stores a value in Redis cache with TTL
func (r *RedisCacheProviderAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	if err := r.client.Set(ctx, r.key(key), value, ttl).Err(); err != nil {
		return errors.NewExternalAPIError("redis set operation failed", err)
	}

	return nil
}

// Delete removes a value from Redis cache
func (r *RedisCacheProviderAdapter) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return errors.NewExternalAPIError("redis delete operation failed", err)
	}

	return nil
}

// Exists checks if a key exists in Redis cache
func (r *RedisCacheProviderAdapter) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("cache key cannot be empty")
	}

	count, err := r.client.Exists(ctx, r.key(key)).Result()
	if err != nil {
		return false, errors.NewExternalAPIError("redis exists operation failed", err)
	}

	return count > 0, nil
}

// Clear removes every key written by this cache
func (r *RedisCacheProviderAdapter) Clear(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, r.keyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errors.NewExternalAPIError("redis clear operation failed", err)
	}
	if len(keys) == 0 {
		return nil
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return errors.NewExternalAPIError("redis clear operation failed", err)
	}
	return nil
}

// GetStats returns cache statistics
func (r *RedisCacheProviderAdapter) GetStats() ports.CacheStats {
	r.stats.mutex.RLock()
	defer r.stats.mutex.RUnlock()

	total := r.stats.hits + r.stats.misses
	hitRatio := float64(0)
	if total > 0 {
		hitRatio = float64(r.stats.hits) / float64(total)
	}

	return ports.CacheStats{
		Hits:        r.stats.hits,
		Misses:      r.stats.misses,
		TotalOps:    total,
		HitRatio:    hitRatio,
		LastUpdated: time.Now(),
	}
}

// RecordHit increments the cache hit counter
func (r *RedisCacheProviderAdapter) RecordHit() {
	r.recordHit()
}

// RecordMiss increments the cache miss counter
func (r *RedisCacheProviderAdapter) RecordMiss() {
	r.recordMiss()
}

// RecordOperation counts a cache operation
func (r *RedisCacheProviderAdapter) RecordOperation(operation string, duration time.Duration) {
	r.stats.mutex.Lock()
	defer r.stats.mutex.Unlock()
	r.stats.operations++
}

// recordHit increments the cache hit counter (internal method)
func (r *RedisCacheProviderAdapter) recordHit() {
	r.stats.mutex.Lock()
	defer r.stats.mutex.Unlock()
	r.stats.hits++
}

// recordMiss increments the cache miss counter (internal method)
func (r *RedisCacheProviderAdapter) recordMiss() {
	r.stats.mutex.Lock()
	defer r.stats.mutex.Unlock()
	r.stats.misses++
}

// Close closes the Redis client connection
func (r *RedisCacheProviderAdapter) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewExternalAPIError("failed to close Redis connection", err)
	}
	return nil
}

// Ping checks if Redis connection is alive
func (r *RedisCacheProviderAdapter) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewExternalAPIError("Redis ping failed", err)
	}
	return nil
}
