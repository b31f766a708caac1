package external

import (
	"fmt"

	"weatherhistory.app/internal/config"
	"weatherhistory.app/internal/ports"
	"weatherhistory.app/pkg/errors"
)

// CacheProviderFactory builds the CacheProvider selected by CACHE_TYPE
type CacheProviderFactory struct{}

func NewCacheProviderFactory() *CacheProviderFactory {
	return &CacheProviderFactory{}
}

func (f *CacheProviderFactory) CreateCacheProvider(cfg *config.CacheConfig) (ports.CacheProvider, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("cache config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.CacheTypeMemory:
		return NewMemoryCacheProvider(), nil
	case config.CacheTypeRedis:
		return NewRedisCacheProviderAdapter(&cfg.Redis)
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported cache type: %s", cfg.Type.String()), nil)
	}
}
