package postgres

import (
	"context"

	"biolink/internal/domain/entity"
	domainerrors "biolink/internal/domain/errors"
	"biolink/internal/domain/repository"
	"biolink/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userTemplateRepository implements the repository.UserTemplateRepository interface.
type userTemplateRepository struct {
	db *gorm.DB
}

// NewUserTemplateRepository is the constructor for userTemplateRepository.
func NewUserTemplateRepository(db *gorm.DB) repository.UserTemplateRepository {
	return &userTemplateRepository{
		db: db,
	}
}

// GetUserTemplateOverride retrieves the override of a user.
func (repo *userTemplateRepository) GetUserTemplateOverride(ctx context.Context, userID uuid.UUID) (*entity.UserTemplateOverride, error) {
	var templateM model.UserTemplateModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&templateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTemplateOverrideNotFound
		}

		return nil, errors.Wrap(err, "failed to find user template override")
	}

	return toUserTemplateDomain(&templateM), nil
}

// UpsertUserTemplateOverride inserts the override or updates the existing row in place.
func (repo *userTemplateRepository) UpsertUserTemplateOverride(ctx context.Context, override *entity.UserTemplateOverride) error {
	templateM := fromUserTemplateDomain(override)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"template_id", "button_style", "font_family", "theme_color", "animation_type",
				"custom_color", "gradient_from", "gradient_to", "updated_at",
			}),
		}).
		Create(templateM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert user template override")
	}

	override.CreatedAt = templateM.CreatedAt
	override.UpdatedAt = templateM.UpdatedAt

	return nil
}

func toUserTemplateDomain(data *model.UserTemplateModel) *entity.UserTemplateOverride {
	return &entity.UserTemplateOverride{
		UserID:        data.UserID,
		TemplateID:    data.TemplateID,
		ButtonStyle:   data.ButtonStyle,
		FontFamily:    data.FontFamily,
		ThemeColor:    data.ThemeColor,
		AnimationType: data.AnimationType,
		CustomColor:   data.CustomColor,
		GradientFrom:  data.GradientFrom,
		GradientTo:    data.GradientTo,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromUserTemplateDomain(data *entity.UserTemplateOverride) *model.UserTemplateModel {
	return &model.UserTemplateModel{
		UserID:        data.UserID,
		TemplateID:    data.TemplateID,
		ButtonStyle:   data.ButtonStyle,
		FontFamily:    data.FontFamily,
		ThemeColor:    data.ThemeColor,
		AnimationType: data.AnimationType,
		CustomColor:   data.CustomColor,
		GradientFrom:  data.GradientFrom,
		GradientTo:    data.GradientTo,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
