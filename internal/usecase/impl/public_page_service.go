package impl

import (
	"context"
	"log/slog"

	deliverycontext "biolink/internal/delivery/context"
	"biolink/internal/domain/entity"
	domainerrors "biolink/internal/domain/errors"
	"biolink/internal/domain/linkorder"
	"biolink/internal/domain/repository"
	"biolink/internal/domain/service"
	"biolink/internal/domain/style"
	"biolink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type publicPageService struct {
	txManager repository.TransactionManager
	cache     service.PublicPageCache
	qrcode    service.QRCodeService
	logger    *slog.Logger
}

// PublicPageServiceParams holds dependencies for PublicPageService, injected by Fx.
type PublicPageServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	Cache         service.PublicPageCache
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewPublicPageService creates a new public page service instance
func NewPublicPageService(params PublicPageServiceParams) usecase.PublicPageUsecase {
	return &publicPageService{
		txManager: params.TxManager,
		cache:     params.Cache,
		qrcode:    params.QRCodeService,
		logger:    params.Logger,
	}
}

func (srv *publicPageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetPublicPage serves the page from cache, building and caching it on a miss.
// Cache failures degrade to building from the store. The build is cached only if no
// invalidation happened since the miss.
func (srv *publicPageService) GetPublicPage(ctx context.Context, username string) (*entity.PublicPage, error) {
	page, err := srv.cache.Get(ctx, username)
	if err == nil {
		return page, nil
	}
	if !errors.Is(err, service.ErrCacheMiss) {
		srv.log(ctx).Warn("Public page cache read failed", slog.String("username", username), slog.Any("error", err))
	}

	generation, genErr := srv.cache.Generation(ctx, username)

	page, err = srv.buildPage(ctx, username)
	if err != nil {
		return nil, err
	}

	if genErr != nil {
		srv.log(ctx).Warn("Public page cache generation read failed", slog.String("username", username), slog.Any("error", genErr))

		return page, nil
	}

	err = srv.cache.Set(ctx, page, generation)
	switch {
	case errors.Is(err, service.ErrCacheStale):
		srv.log(ctx).Debug("Skipped caching page invalidated during build", slog.String("username", username))
	case err != nil:
		srv.log(ctx).Warn("Public page cache write failed", slog.String("username", username), slog.Any("error", err))
	}

	return page, nil
}

// GetPublicQRCode returns a QR code for an existing public page.
func (srv *publicPageService) GetPublicQRCode(ctx context.Context, username string) ([]byte, error) {
	var profile *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewProfileRepository().GetProfileByUsername(ctx, username)
		if err != nil {
			return mapProfileError(err)
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find public page")
	}

	return srv.generateQR(profile.Username)
}

// GetOwnQRCode returns a QR code for the caller's public page.
func (srv *publicPageService) GetOwnQRCode(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	var profile *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewProfileRepository().GetProfile(ctx, userID)
		if err != nil {
			return mapProfileError(err)
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	return srv.generateQR(profile.Username)
}

func (srv *publicPageService) generateQR(username string) ([]byte, error) {
	png, err := srv.qrcode.GenerateProfileQR(username)
	if err != nil {
		return nil, domainerrors.ErrQRCodeGenerationFailed.WrapMessage(err.Error())
	}

	return png, nil
}

// buildPage reads profile, override and links in one transaction and resolves the style
// the same way the editor does.
func (srv *publicPageService) buildPage(ctx context.Context, username string) (*entity.PublicPage, error) {
	var (
		profile  *entity.Profile
		override *entity.UserTemplateOverride
		links    []*entity.Link
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewProfileRepository().GetProfileByUsername(ctx, username)
		if err != nil {
			return mapProfileError(err)
		}
		profile = found

		if override, err = findOverride(ctx, repoFactory, profile.UserID); err != nil {
			return err
		}

		if links, err = repoFactory.NewLinkRepository().ListLinks(ctx, profile.UserID); err != nil {
			return errors.Wrap(err, "failed to list links")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build public page")
	}

	linkorder.Sort(links)

	page := &entity.PublicPage{
		UserID:      profile.UserID,
		Username:    profile.Username,
		DisplayName: profile.DisplayName,
		Bio:         profile.Bio,
		AvatarURL:   profile.AvatarURL,
		Style:       style.ResolveFor(style.Layers{Override: override, Profile: profile}),
		Links:       make([]entity.PublicLink, 0, len(links)),
	}
	for _, link := range links {
		page.Links = append(page.Links, entity.NewPublicLink(link))
	}

	return page, nil
}

func mapProfileError(err error) error {
	if errors.Is(err, repository.ErrProfileNotFound) {
		return domainerrors.ErrProfileNotFound.WrapMessage("profile not found")
	}

	return errors.Wrap(err, "failed to find profile")
}
