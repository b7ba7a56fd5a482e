package postgres

import (
	"context"
	"time"

	"biolink/internal/domain/entity"
	"biolink/internal/domain/repository"
	"biolink/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dayLayout = "2006-01-02"

// clickRepository implements the repository.ClickRepository interface.
type clickRepository struct {
	db *gorm.DB
}

// NewClickRepository is the constructor for clickRepository.
func NewClickRepository(db *gorm.DB) repository.ClickRepository {
	return &clickRepository{
		db: db,
	}
}

// CreateClick persists a click. Redelivered events carry the same ID and are ignored.
func (repo *clickRepository) CreateClick(ctx context.Context, click *entity.LinkClick) error {
	clickM := fromClickDomain(click)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(clickM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrLinkNotFound
		}

		return errors.Wrap(result.Error, "failed to create link click")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDuplicateClick
	}

	return nil
}

type dailyClickRow struct {
	LinkID uuid.UUID
	Day    time.Time
	Count  int64
}

// DailyClicks returns per-link click counts bucketed by UTC day.
func (repo *clickRepository) DailyClicks(ctx context.Context, userID uuid.UUID, since time.Time) (map[uuid.UUID][]entity.DailyClicks, error) {
	var rows []dailyClickRow

	if err := repo.db.WithContext(ctx).
		Model(&model.LinkClickModel{}).
		Select("link_id, date_trunc('day', clicked_at AT TIME ZONE 'UTC') AS day, COUNT(*) AS count").
		Where("user_id = ? AND clicked_at >= ?", userID, since).
		Group("link_id, day").
		Order("day ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate daily clicks")
	}

	return groupDailyClicks(rows), nil
}

func groupDailyClicks(rows []dailyClickRow) map[uuid.UUID][]entity.DailyClicks {
	grouped := make(map[uuid.UUID][]entity.DailyClicks)
	for _, row := range rows {
		grouped[row.LinkID] = append(grouped[row.LinkID], entity.DailyClicks{
			Date:  row.Day.UTC().Format(dayLayout),
			Count: row.Count,
		})
	}

	return grouped
}

func fromClickDomain(data *entity.LinkClick) *model.LinkClickModel {
	return &model.LinkClickModel{
		ID:        data.ID,
		LinkID:    data.LinkID,
		UserID:    data.UserID,
		Referrer:  data.Referrer,
		UserAgent: data.UserAgent,
		IPHash:    data.IPHash,
		ClickedAt: data.ClickedAt,
	}
}
