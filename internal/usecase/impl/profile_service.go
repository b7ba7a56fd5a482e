// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	pages     *pageInvalidator
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Cache     service.PublicPageCache
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		pages:     newPageInvalidator(params.TxManager, params.Cache, params.Logger),
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the profile of a user.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profile *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewProfileRepository().GetProfile(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound.WrapMessage("profile not found")
			}

			return errors.Wrap(err, "failed to find profile")
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

// UpdateProfile creates the profile on first save and updates it in place afterwards.
// Nil input fields keep their stored value.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	srv.log(ctx).Info("Updating profile", slog.String("user_id", userID.String()))

	if err := validateTemplateID(input.TemplateID); err != nil {
		return nil, err
	}

	var (
		profile     *entity.Profile
		oldUsername string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		existing, err := profileRepo.GetProfile(ctx, userID)
		switch {
		case errors.Is(err, repository.ErrProfileNotFound):
			if input.Username == nil || strings.TrimSpace(*input.Username) == "" {
				return domainerrors.ErrValidationFailed.WrapMessage("username is required to create a profile")
			}
			existing = &entity.Profile{UserID: userID, CreatedAt: time.Now()}
		case err != nil:
			return errors.Wrap(err, "failed to find profile")
		default:
			oldUsername = existing.Username
		}

		applyProfileInput(existing, input)
		existing.UpdatedAt = time.Now()

		if err := profileRepo.UpdateProfile(ctx, existing); err != nil {
			if errors.Is(err, repository.ErrUsernameTaken) {
				return domainerrors.ErrUsernameTaken.WrapMessage("username already taken")
			}

			return errors.Wrap(err, "failed to save profile")
		}
		profile = existing

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update profile", slog.String("user_id", userID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.pages.invalidateUsernames(ctx, oldUsername, profile.Username)

	return profile, nil
}

func applyProfileInput(profile *entity.Profile, input *usecase.UpdateProfileInput) {
	if input.Username != nil {
		profile.Username = strings.TrimSpace(*input.Username)
	}
	if input.DisplayName != nil {
		profile.DisplayName = *input.DisplayName
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.AvatarURL != nil {
		profile.AvatarURL = *input.AvatarURL
	}
	if input.TemplateID != nil {
		profile.TemplateID = *input.TemplateID
	}
	if input.ThemeColor != nil {
		profile.ThemeColor = input.ThemeColor
	}
	if input.ButtonStyle != nil {
		profile.ButtonStyle = input.ButtonStyle
	}
	if input.FontFamily != nil {
		profile.FontFamily = input.FontFamily
	}
	if input.AnimationType != nil {
		profile.AnimationType = input.AnimationType
	}
}
