package usecase

import (
	"context"

	"biolink/internal/domain/entity"
	"biolink/internal/domain/service"

	"github.com/google/uuid"
)

// ClickUsecase covers click tracking: publishing on visit, recording in the worker, and stats.
type ClickUsecase interface {
	// TrackClick publishes a click event and returns the URL to redirect to.
	// Publishing failures are logged and never block the redirect.
	TrackClick(ctx context.Context, linkID uuid.UUID, input *ClickInput) (string, error)

	// RecordClick stores a click event delivered by the message queue
	RecordClick(ctx context.Context, event *service.LinkClickEvent) error

	// GetLinkStats aggregates clicks of the user's links over the last days days.
	// Zero selects the configured default window.
	GetLinkStats(ctx context.Context, userID uuid.UUID, days int) ([]*entity.LinkStats, error)
}

// ClickInput holds visitor metadata captured at redirect time.
type ClickInput struct {
	Referrer  string
	UserAgent string
	ClientIP  string
	RequestID string
}
