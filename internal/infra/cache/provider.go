package cache

import (
	"context"
	"log/slog"
	"time"

	"biolink/config"
	"biolink/internal/domain/service"

	"go.uber.org/fx"
)

const fallbackTTL = 10 * time.Minute

// CacheParams holds dependencies for PublicPageCache, injected by Fx
type CacheParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPublicPageCache creates a PublicPageCache based on configuration
func NewPublicPageCache(params CacheParams) (service.PublicPageCache, error) {
	cfg := params.Config
	if cfg.Redis == nil || !cfg.Redis.Enabled {
		params.Logger.Info("Redis not enabled, public pages are not cached")

		return NewNoopPageCache(), nil
	}

	ttl := fallbackTTL
	if cfg.PublicPage != nil && cfg.PublicPage.CacheTTL > 0 {
		ttl = cfg.PublicPage.CacheTTL
	}

	pageCache, err := NewRedisPageCache(params.Ctx, cfg.Redis, ttl, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing public page cache")

			return pageCache.Close()
		},
	})

	return pageCache, nil
}
