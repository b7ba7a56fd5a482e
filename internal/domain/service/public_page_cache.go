package service

import (
	"context"

	"biolink/internal/domain/entity"
	"biolink/internal/errors"
)

var (
	// ErrCacheMiss is returned by PublicPageCache.Get when no entry exists.
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheStale is returned by PublicPageCache.Set when the username was
	// invalidated after the generation passed to Set was read.
	ErrCacheStale = errors.New("cache entry invalidated while building")
)

// PublicPageCache stores rendered public pages keyed by username
type PublicPageCache interface {
	// Get returns the cached page or ErrCacheMiss
	Get(ctx context.Context, username string) (*entity.PublicPage, error)

	// Generation returns the invalidation counter of username, 0 if it was never invalidated
	Generation(ctx context.Context, username string) (int64, error)

	// Set stores the page under its username only while its generation still equals generation
	Set(ctx context.Context, page *entity.PublicPage, generation int64) error

	// Invalidate drops the entry of username and advances its generation
	Invalidate(ctx context.Context, username string) error

	// Close releases the underlying connection
	Close() error
}
