package cache

import (
	"context"

	"biolink/internal/domain/entity"
	"biolink/internal/domain/service"
)

// noopPageCache always misses. Used when Redis is disabled.
type noopPageCache struct{}

// NewNoopPageCache returns a cache that stores nothing.
func NewNoopPageCache() service.PublicPageCache {
	return noopPageCache{}
}

func (noopPageCache) Get(context.Context, string) (*entity.PublicPage, error) {
	return nil, service.ErrCacheMiss
}

func (noopPageCache) Generation(context.Context, string) (int64, error) { return 0, nil }

func (noopPageCache) Set(context.Context, *entity.PublicPage, int64) error { return nil }

func (noopPageCache) Invalidate(context.Context, string) error { return nil }

func (noopPageCache) Close() error { return nil }
