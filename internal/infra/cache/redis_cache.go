// Package cache provides PublicPageCache implementations.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"biolink/config"
	"biolink/internal/domain/entity"
	"biolink/internal/domain/service"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

const (
	pageKeyPrefix       = "biolink:public_page:"
	generationKeyPrefix = "biolink:public_page_gen:"
	defaultDialTimeout  = 5 * time.Second
)

type redisPageCache struct {
	rdb    *goredis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisPageCache connects to Redis and pings it before returning.
func NewRedisPageCache(ctx context.Context, cfg *config.RedisConfig, ttl time.Duration, logger *slog.Logger) (service.PublicPageCache, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis address is required")
	}

	dialTimeout := cfg.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = defaultDialTimeout
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: dialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()

		return nil, errors.Wrap(err, "redis ping")
	}

	logger.Info("Redis public page cache initialized",
		slog.String("addr", cfg.Addr),
		slog.Duration("ttl", ttl),
	)

	return &redisPageCache{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}, nil
}

func (c *redisPageCache) Get(ctx context.Context, username string) (*entity.PublicPage, error) {
	raw, err := c.rdb.Get(ctx, pageKey(username)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, service.ErrCacheMiss
		}

		return nil, errors.Wrap(err, "failed to read cached page")
	}

	var page entity.PublicPage
	if err := json.Unmarshal(raw, &page); err != nil {
		// A corrupt entry is treated as absent and replaced on the next Set
		c.logger.Warn("Dropping undecodable cached page",
			slog.String("username", username),
			slog.Any("error", err),
		)

		return nil, service.ErrCacheMiss
	}

	return &page, nil
}

func (c *redisPageCache) Generation(ctx context.Context, username string) (int64, error) {
	return readGeneration(ctx, c.rdb, username)
}

// Set writes the page in a WATCH/MULTI transaction on the generation key, so a page
// built before a concurrent Invalidate is never stored after it.
func (c *redisPageCache) Set(ctx context.Context, page *entity.PublicPage, generation int64) error {
	raw, err := json.Marshal(page)
	if err != nil {
		return errors.WithStack(err)
	}

	err = c.rdb.Watch(ctx, func(tx *goredis.Tx) error {
		current, err := readGeneration(ctx, tx, page.Username)
		if err != nil {
			return err
		}
		if current != generation {
			return service.ErrCacheStale
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, pageKey(page.Username), raw, c.ttl)

			return nil
		})

		return err
	}, generationKey(page.Username))

	switch {
	case errors.Is(err, goredis.TxFailedErr):
		return service.ErrCacheStale
	case errors.Is(err, service.ErrCacheStale):
		return err
	case err != nil:
		return errors.Wrap(err, "failed to cache page")
	}

	return nil
}

func (c *redisPageCache) Invalidate(ctx context.Context, username string) error {
	if username == "" {
		return nil
	}

	_, err := c.rdb.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(username))
		pipe.Del(ctx, pageKey(username))

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "failed to invalidate page of %s", username)
	}

	return nil
}

func (c *redisPageCache) Close() error {
	return errors.WithStack(c.rdb.Close())
}

func pageKey(username string) string {
	return pageKeyPrefix + username
}

func generationKey(username string) string {
	return generationKeyPrefix + username
}

// stringGetter is satisfied by both the client and a WATCH transaction.
type stringGetter interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
}

func readGeneration(ctx context.Context, rdb stringGetter, username string) (int64, error) {
	generation, err := rdb.Get(ctx, generationKey(username)).Int64()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrapf(err, "failed to read cache generation of %s", username)
	}

	return generation, nil
}
