package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"biolink/config"
	deliverycontext "biolink/internal/delivery/context"
	"biolink/internal/domain/entity"
	domainerrors "biolink/internal/domain/errors"
	"biolink/internal/domain/repository"
	"biolink/internal/domain/service"
	"biolink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultStatsWindowDays = 30
	maxUserAgentLength     = 512
	maxReferrerLength      = 2048
	statsDateLayout        = "2006-01-02"
)

type clickService struct {
	txManager         repository.TransactionManager
	publisher         service.EventPublisher
	ipHashSalt        string
	defaultWindowDays int
	maxWindowDays     int
	logger            *slog.Logger
	now               func() time.Time
}

// ClickServiceParams holds dependencies for ClickService, injected by Fx.
type ClickServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

// NewClickService creates a new click service instance
func NewClickService(params ClickServiceParams) usecase.ClickUsecase {
	srv := &clickService{
		txManager:         params.TxManager,
		publisher:         params.Publisher,
		defaultWindowDays: defaultStatsWindowDays,
		maxWindowDays:     defaultStatsWindowDays,
		logger:            params.Logger,
		now:               time.Now,
	}

	if analytics := params.Config.Analytics; analytics != nil {
		srv.ipHashSalt = analytics.IPHashSalt
		if analytics.MaxWindowDays > 0 {
			srv.maxWindowDays = analytics.MaxWindowDays
		}
		if analytics.DefaultWindowDays > 0 {
			srv.defaultWindowDays = min(analytics.DefaultWindowDays, srv.maxWindowDays)
		}
	}

	return srv
}

func (srv *clickService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// TrackClick resolves the redirect target and publishes a click event.
// A failed publish loses the click, never the redirect.
func (srv *clickService) TrackClick(ctx context.Context, linkID uuid.UUID, input *usecase.ClickInput) (string, error) {
	var link *entity.Link

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewLinkRepository().FindLinkByID(ctx, linkID)
		if err != nil {
			if errors.Is(err, repository.ErrLinkNotFound) {
				return domainerrors.ErrLinkNotFound.WrapMessage("link not found")
			}

			return errors.Wrap(err, "failed to find link")
		}
		link = found

		return nil
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to track click")
	}

	if srv.publisher == nil {
		return link.URL, nil
	}

	event := &service.LinkClickEvent{
		RequestID: input.RequestID,
		ClickID:   uuid.New().String(),
		LinkID:    link.ID.String(),
		UserID:    link.UserID.String(),
		Referrer:  truncate(input.Referrer, maxReferrerLength),
		UserAgent: truncate(input.UserAgent, maxUserAgentLength),
		IPHash:    hashIP(srv.ipHashSalt, input.ClientIP),
		ClickedAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishLinkClickEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish click event",
			slog.String("link_id", event.LinkID),
			slog.String("click_id", event.ClickID),
			slog.Any("error", err),
		)
	}

	return link.URL, nil
}

// RecordClick stores a delivered click and bumps the link counter in one transaction.
// Redelivered clicks and clicks on deleted links are acknowledged without effect.
func (srv *clickService) RecordClick(ctx context.Context, event *service.LinkClickEvent) error {
	click, err := clickFromEvent(event)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewClickRepository().CreateClick(ctx, click); err != nil {
			return err
		}

		return repoFactory.NewLinkRepository().IncrementClickCount(ctx, click.LinkID)
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrDuplicateClick):
		srv.log(ctx).Info("Click already recorded", slog.String("click_id", event.ClickID))

		return nil
	case errors.Is(err, repository.ErrLinkNotFound):
		srv.log(ctx).Info("Dropping click of deleted link", slog.String("link_id", event.LinkID))

		return nil
	default:
		return errors.Wrap(err, "failed to record click")
	}
}

// GetLinkStats aggregates per-link clicks over the last days days, today included.
// Every day of the window is present, zero-filled.
func (srv *clickService) GetLinkStats(ctx context.Context, userID uuid.UUID, days int) ([]*entity.LinkStats, error) {
	if days == 0 {
		days = srv.defaultWindowDays
	}
	if days < 0 || days > srv.maxWindowDays {
		return nil, domainerrors.ErrInvalidStatsWindow.WrapMessage("days must be between 1 and the configured maximum")
	}

	today := srv.now().UTC().Truncate(24 * time.Hour)
	since := today.AddDate(0, 0, -(days - 1))

	var (
		links []*entity.Link
		daily map[uuid.UUID][]entity.DailyClicks
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		if links, err = repoFactory.NewLinkRepository().ListLinks(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to list links")
		}
		if daily, err = repoFactory.NewClickRepository().DailyClicks(ctx, userID, since); err != nil {
			return errors.Wrap(err, "failed to aggregate clicks")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get link stats")
	}

	stats := make([]*entity.LinkStats, 0, len(links))
	for _, link := range links {
		buckets := fillDays(since, days, daily[link.ID])

		var windowTotal int64
		for _, bucket := range buckets {
			windowTotal += bucket.Count
		}

		stats = append(stats, &entity.LinkStats{
			LinkID:      link.ID,
			Title:       link.Title,
			TotalClicks: link.ClickCount,
			WindowTotal: windowTotal,
			Daily:       buckets,
		})
	}

	return stats, nil
}

// fillDays returns one bucket per day starting at since, taking counts from recorded.
func fillDays(since time.Time, days int, recorded []entity.DailyClicks) []entity.DailyClicks {
	counts := make(map[string]int64, len(recorded))
	for _, r := range recorded {
		counts[r.Date] += r.Count
	}

	buckets := make([]entity.DailyClicks, 0, days)
	for i := range days {
		date := since.AddDate(0, 0, i).Format(statsDateLayout)
		buckets = append(buckets, entity.DailyClicks{Date: date, Count: counts[date]})
	}

	return buckets
}

func clickFromEvent(event *service.LinkClickEvent) (*entity.LinkClick, error) {
	clickID, err := uuid.Parse(event.ClickID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid click id")
	}
	linkID, err := uuid.Parse(event.LinkID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid link id")
	}
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid user id")
	}

	clickedAt := event.ClickedAt
	if clickedAt.IsZero() {
		clickedAt = time.Now().UTC()
	}

	return &entity.LinkClick{
		ID:        clickID,
		LinkID:    linkID,
		UserID:    userID,
		Referrer:  event.Referrer,
		UserAgent: event.UserAgent,
		IPHash:    event.IPHash,
		ClickedAt: clickedAt,
	}, nil
}

// hashIP returns the hex SHA-256 of salt+ip, or "" when ip is unknown.
func hashIP(salt, ip string) string {
	if ip == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(salt + ip))

	return hex.EncodeToString(sum[:])
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	return strings.ToValidUTF8(s[:limit], "")
}
