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

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// GetProfile retrieves the profile of a user.
func (repo *profileRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return toProfileDomain(&profileM), nil
}

// GetProfileByUsername retrieves a profile by its public username.
func (repo *profileRepository) GetProfileByUsername(ctx context.Context, username string) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by username")
	}

	return toProfileDomain(&profileM), nil
}

// UpdateProfile creates or replaces the profile of profile.UserID.
func (repo *profileRepository) UpdateProfile(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"username", "display_name", "bio", "avatar_url", "template_id",
				"theme_color", "button_style", "font_family", "animation_type", "updated_at",
			}),
		}).
		Create(profileM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUsernameTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	return &entity.Profile{
		UserID:        data.UserID,
		Username:      data.Username,
		DisplayName:   data.DisplayName,
		Bio:           data.Bio,
		AvatarURL:     data.AvatarURL,
		TemplateID:    data.TemplateID,
		ThemeColor:    data.ThemeColor,
		ButtonStyle:   data.ButtonStyle,
		FontFamily:    data.FontFamily,
		AnimationType: data.AnimationType,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	return &model.ProfileModel{
		UserID:        data.UserID,
		Username:      data.Username,
		DisplayName:   data.DisplayName,
		Bio:           data.Bio,
		AvatarURL:     data.AvatarURL,
		TemplateID:    data.TemplateID,
		ThemeColor:    data.ThemeColor,
		ButtonStyle:   data.ButtonStyle,
		FontFamily:    data.FontFamily,
		AnimationType: data.AnimationType,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
