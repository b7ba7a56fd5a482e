package impl

import (
	"context"
	"log/slog"

	deliverycontext "biolink/internal/delivery/context"
	"biolink/internal/domain/entity"
	"biolink/internal/domain/repository"
	"biolink/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// pageInvalidator drops cached public pages after their inputs change.
// Failures are logged only; the cache TTL bounds staleness.
type pageInvalidator struct {
	txManager repository.TransactionManager
	cache     service.PublicPageCache
	logger    *slog.Logger
}

func newPageInvalidator(txManager repository.TransactionManager, cache service.PublicPageCache, logger *slog.Logger) *pageInvalidator {
	return &pageInvalidator{
		txManager: txManager,
		cache:     cache,
		logger:    logger,
	}
}

// invalidateUser looks up the username of userID and drops its page.
func (p *pageInvalidator) invalidateUser(ctx context.Context, userID uuid.UUID) {
	var profile *entity.Profile
	err := p.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewProfileRepository().GetProfile(ctx, userID)
		if err != nil {
			return err
		}
		profile = found

		return nil
	})
	if errors.Is(err, repository.ErrProfileNotFound) {
		// No profile means no public page to drop
		return
	}
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, p.logger).Warn("Failed to resolve username for cache invalidation",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)

		return
	}

	p.invalidateUsernames(ctx, profile.Username)
}

// invalidateUsernames drops the pages of the given usernames, skipping blanks.
func (p *pageInvalidator) invalidateUsernames(ctx context.Context, usernames ...string) {
	for _, username := range usernames {
		if username == "" {
			continue
		}
		if err := p.cache.Invalidate(ctx, username); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, p.logger).Warn("Failed to invalidate public page cache",
				slog.String("username", username),
				slog.Any("error", err),
			)
		}
	}
}
