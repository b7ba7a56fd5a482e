package repository

import (
	"context"
	"time"

	"biolink/internal/domain/entity"
	"biolink/internal/errors"

	"github.com/google/uuid"
)

// ErrDuplicateClick is returned when a click with the same ID was already recorded.
var ErrDuplicateClick = errors.New("click already recorded")

// ClickRepository defines the operations of the click analytics store.
type ClickRepository interface {
	// CreateClick persists a single click event.
	CreateClick(ctx context.Context, click *entity.LinkClick) error

	// DailyClicks returns per-link, per-day click counts of a user's links since the given time.
	DailyClicks(ctx context.Context, userID uuid.UUID, since time.Time) (map[uuid.UUID][]entity.DailyClicks, error)
}
