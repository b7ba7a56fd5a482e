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
	"biolink/internal/domain/style"
	"biolink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// styleService implements the StyleUsecase interface. Every resolution goes
// through style.Resolve so editor, preview modal and public page agree.
type styleService struct {
	txManager repository.TransactionManager
	pages     *pageInvalidator
	logger    *slog.Logger
}

// StyleServiceParams holds dependencies for StyleService, injected by Fx.
type StyleServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Cache     service.PublicPageCache
	Logger    *slog.Logger
}

// NewStyleService is the constructor for styleService.
func NewStyleService(params StyleServiceParams) usecase.StyleUsecase {
	return &styleService{
		txManager: params.TxManager,
		pages:     newPageInvalidator(params.TxManager, params.Cache, params.Logger),
		logger:    params.Logger,
	}
}

func (srv *styleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListTemplates returns the static template catalog.
func (srv *styleService) ListTemplates() []entity.TemplateDescriptor {
	return style.Templates()
}

// GetTemplateOverride returns the stored override, or an empty one for a user who never customized.
func (srv *styleService) GetTemplateOverride(ctx context.Context, userID uuid.UUID) (*entity.UserTemplateOverride, error) {
	var override *entity.UserTemplateOverride

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findOverride(ctx, repoFactory, userID)
		if err != nil {
			return err
		}
		override = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get template override")
	}

	if override == nil {
		override = &entity.UserTemplateOverride{UserID: userID}
	}

	return override, nil
}

// UpdateTemplateOverride creates the override on first customization and updates it in place afterwards.
func (srv *styleService) UpdateTemplateOverride(ctx context.Context, userID uuid.UUID, input *usecase.TemplateOverrideInput) (*entity.UserTemplateOverride, error) {
	if err := validateTemplateID(input.TemplateID); err != nil {
		return nil, err
	}

	var override *entity.UserTemplateOverride

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		current, err := findOverride(ctx, repoFactory, userID)
		if err != nil {
			return err
		}
		if current == nil {
			current = &entity.UserTemplateOverride{UserID: userID, CreatedAt: time.Now()}
		}

		applyOverrideInput(current, input)
		current.UpdatedAt = time.Now()

		if err := repoFactory.NewUserTemplateRepository().UpsertUserTemplateOverride(ctx, current); err != nil {
			return errors.Wrap(err, "failed to save template override")
		}
		override = current

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update template override", slog.String("user_id", userID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update template override")
	}

	srv.pages.invalidateUser(ctx, userID)

	return override, nil
}

// GetEffectiveStyle resolves the stored configuration of a user.
func (srv *styleService) GetEffectiveStyle(ctx context.Context, userID uuid.UUID) (*entity.EffectiveStyle, error) {
	layers, err := srv.loadLayers(ctx, userID)
	if err != nil {
		return nil, err
	}

	resolved := style.ResolveFor(layers)

	return &resolved, nil
}

// PreviewTemplate resolves a candidate catalog template with the user's stored layers.
// The candidate replaces the stored template selection; the other override fields still apply.
func (srv *styleService) PreviewTemplate(ctx context.Context, userID uuid.UUID, templateID string) (*entity.EffectiveStyle, error) {
	if !style.IsKnownTemplate(templateID) {
		return nil, domainerrors.ErrTemplateNotFound.WrapMessage("unknown template " + templateID)
	}

	layers, err := srv.loadLayers(ctx, userID)
	if err != nil {
		return nil, err
	}

	resolved := style.Resolve(templateID, layers)

	return &resolved, nil
}

// PreviewDraft resolves the stored layers plus unsaved editor state.
func (srv *styleService) PreviewDraft(ctx context.Context, userID uuid.UUID, draft *entity.StyleDraft) (*entity.EffectiveStyle, error) {
	if draft != nil {
		if err := validateTemplateID(draft.TemplateID); err != nil {
			return nil, err
		}
	}

	layers, err := srv.loadLayers(ctx, userID)
	if err != nil {
		return nil, err
	}
	layers.Draft = draft

	resolved := style.ResolveFor(layers)

	return &resolved, nil
}

// loadLayers reads the stored override and profile. Either may be absent.
func (srv *styleService) loadLayers(ctx context.Context, userID uuid.UUID) (style.Layers, error) {
	var layers style.Layers

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		override, err := findOverride(ctx, repoFactory, userID)
		if err != nil {
			return err
		}

		profile, err := repoFactory.NewProfileRepository().GetProfile(ctx, userID)
		if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(err, "failed to find profile")
		}

		layers.Override = override
		layers.Profile = profile

		return nil
	})
	if err != nil {
		return style.Layers{}, errors.Wrap(err, "failed to load style layers")
	}

	return layers, nil
}

// findOverride returns nil without error when the user never customized.
func findOverride(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID) (*entity.UserTemplateOverride, error) {
	override, err := repoFactory.NewUserTemplateRepository().GetUserTemplateOverride(ctx, userID)
	if errors.Is(err, repository.ErrTemplateOverrideNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find template override")
	}

	return override, nil
}

// validateTemplateID rejects ids that are set but not in the catalog.
func validateTemplateID(templateID *string) error {
	if templateID == nil {
		return nil
	}

	id := strings.TrimSpace(*templateID)
	if id != "" && !style.IsKnownTemplate(id) {
		return domainerrors.ErrTemplateNotFound.WrapMessage("unknown template " + id)
	}

	return nil
}

func applyOverrideInput(override *entity.UserTemplateOverride, input *usecase.TemplateOverrideInput) {
	set := func(dst **string, src *string) {
		if src != nil {
			v := *src
			*dst = &v
		}
	}

	set(&override.TemplateID, input.TemplateID)
	set(&override.ButtonStyle, input.ButtonStyle)
	set(&override.FontFamily, input.FontFamily)
	set(&override.ThemeColor, input.ThemeColor)
	set(&override.AnimationType, input.AnimationType)
	set(&override.CustomColor, input.CustomColor)
	set(&override.GradientFrom, input.GradientFrom)
	set(&override.GradientTo, input.GradientTo)
}
