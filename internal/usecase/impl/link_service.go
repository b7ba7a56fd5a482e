package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "biolink/internal/delivery/context"
	"biolink/internal/domain/entity"
	domainerrors "biolink/internal/domain/errors"
	"biolink/internal/domain/linkorder"
	"biolink/internal/domain/repository"
	"biolink/internal/domain/service"
	"biolink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// linkService implements the LinkUsecase interface.
// All mutations of one user's links run through gate, one at a time.
type linkService struct {
	txManager repository.TransactionManager
	gate      *linkorder.Gate
	pages     *pageInvalidator
	logger    *slog.Logger
}

// LinkServiceParams holds dependencies for LinkService, injected by Fx.
type LinkServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Cache     service.PublicPageCache
	Logger    *slog.Logger
}

// NewLinkService is the constructor for linkService.
func NewLinkService(params LinkServiceParams) usecase.LinkUsecase {
	return &linkService{
		txManager: params.TxManager,
		gate:      linkorder.NewGate(),
		pages:     newPageInvalidator(params.TxManager, params.Cache, params.Logger),
		logger:    params.Logger,
	}
}

func (srv *linkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListLinks returns the user's links in display order.
func (srv *linkService) ListLinks(ctx context.Context, userID uuid.UUID) ([]*entity.Link, error) {
	links, err := srv.loadLinks(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list links")
	}

	return links, nil
}

// CreateLink appends a link at max(position)+1, or 0 for the first link.
func (srv *linkService) CreateLink(ctx context.Context, userID uuid.UUID, input *usecase.LinkInput) (*entity.Link, error) {
	details, err := buildLinkDetails(input)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	link := &entity.Link{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     strings.TrimSpace(input.Title),
		URL:       strings.TrimSpace(input.URL),
		Icon:      input.Icon,
		Details:   details,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = srv.gate.Do(ctx, userID, func() error {
		return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			linkRepo := repoFactory.NewLinkRepository()

			existing, err := linkRepo.ListLinks(ctx, userID)
			if err != nil {
				return errors.Wrap(err, "failed to list links")
			}
			link.Position = linkorder.NextPosition(existing)

			if err := linkRepo.CreateLink(ctx, link); err != nil {
				return errors.Wrap(err, "failed to create link")
			}

			return nil
		})
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create link", slog.String("user_id", userID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create link")
	}

	srv.log(ctx).Info("Link created",
		slog.String("link_id", link.ID.String()),
		slog.Int("position", link.Position),
	)
	srv.pages.invalidateUser(ctx, userID)

	return link, nil
}

// UpdateLink edits a link in place. Position and click count are kept; the type may change.
func (srv *linkService) UpdateLink(ctx context.Context, userID, linkID uuid.UUID, input *usecase.LinkInput) (*entity.Link, error) {
	details, err := buildLinkDetails(input)
	if err != nil {
		return nil, err
	}

	var updated *entity.Link

	err = srv.gate.Do(ctx, userID, func() error {
		return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			linkRepo := repoFactory.NewLinkRepository()

			link, err := findOwnedLink(ctx, linkRepo, userID, linkID)
			if err != nil {
				return err
			}

			link.Title = strings.TrimSpace(input.Title)
			link.URL = strings.TrimSpace(input.URL)
			link.Icon = input.Icon
			link.Details = details
			link.UpdatedAt = time.Now()

			if err := linkRepo.UpdateLink(ctx, link); err != nil {
				if errors.Is(err, repository.ErrLinkNotFound) {
					return domainerrors.ErrLinkNotFound.WrapMessage("link not found")
				}

				return errors.Wrap(err, "failed to update link")
			}
			updated = link

			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update link")
	}

	srv.pages.invalidateUser(ctx, userID)

	return updated, nil
}

// DeleteLink hard-deletes a link. The remaining links keep their positions.
func (srv *linkService) DeleteLink(ctx context.Context, userID, linkID uuid.UUID) error {
	err := srv.gate.Do(ctx, userID, func() error {
		return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			if err := repoFactory.NewLinkRepository().DeleteLink(ctx, userID, linkID); err != nil {
				if errors.Is(err, repository.ErrLinkNotFound) {
					return domainerrors.ErrLinkNotFound.WrapMessage("link not found")
				}

				return errors.Wrap(err, "failed to delete link")
			}

			return nil
		})
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete link")
	}

	srv.pages.invalidateUser(ctx, userID)

	return nil
}

// ReorderLinks moves the link at SourceIndex to DestinationIndex and persists every
// changed position in one transaction.
//
// A no-op move returns the current order without touching the store. When persistence
// fails the plan is reverted, the authoritative order is re-fetched into the result and
// the error is ErrReorderFailed, or a PartialReorderError when some writes had applied
// before the failure.
func (srv *linkService) ReorderLinks(ctx context.Context, userID uuid.UUID, input *usecase.ReorderInput) (*usecase.ReorderResult, error) {
	var (
		result    *usecase.ReorderResult
		reportErr error
	)

	err := srv.gate.Do(ctx, userID, func() error {
		current, err := srv.loadLinks(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load links")
		}

		plan := linkorder.NewPlan(current)
		changed, err := plan.Begin(input.SourceIndex, input.DestinationIndex)
		if err != nil {
			if errors.Is(err, linkorder.ErrIndexOutOfRange) {
				return domainerrors.ErrInvalidReorderIndex.WrapMessage(err.Error())
			}

			return errors.Wrap(err, "failed to plan reorder")
		}
		if !changed {
			result = &usecase.ReorderResult{Links: plan.Links(), State: plan.State()}

			return nil
		}

		applied, persistErr := srv.persistPositions(ctx, userID, plan.Updates())
		if persistErr == nil {
			plan.Commit()
			result = &usecase.ReorderResult{
				Links:     plan.Links(),
				State:     plan.State(),
				Persisted: true,
				Updates:   plan.Updates(),
			}

			return nil
		}

		srv.log(ctx).Warn("Reorder persistence failed, reverting",
			slog.String("user_id", userID.String()),
			slog.Int("attempted", len(plan.Updates())),
			slog.Int("applied", applied),
			slog.Any("error", persistErr),
		)

		plan.Fail()
		srv.resync(ctx, userID, plan)

		result = &usecase.ReorderResult{
			Links:    plan.Links(),
			State:    plan.State(),
			Reverted: plan.Reverted(),
		}
		if applied > 0 {
			reportErr = domainerrors.NewPartialReorderError(len(plan.Updates()), applied, persistErr)
		} else {
			reportErr = errors.Wrap(domainerrors.ErrReorderFailed, persistErr.Error())
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to reorder links")
	}

	if result.Persisted || result.Reverted {
		srv.pages.invalidateUser(ctx, userID)
	}

	return result, reportErr
}

// persistPositions writes every update in one transaction and reports how many
// writes succeeded before a failure.
func (srv *linkService) persistPositions(ctx context.Context, userID uuid.UUID, updates []linkorder.PositionUpdate) (int, error) {
	applied := 0

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		linkRepo := repoFactory.NewLinkRepository()

		for _, update := range updates {
			if err := linkRepo.UpdateLinkPosition(ctx, userID, update.LinkID, update.Position); err != nil {
				return errors.Wrapf(err, "failed to move link %s to %d", update.LinkID, update.Position)
			}
			applied++
		}

		return nil
	})

	return applied, err
}

// resync replaces the reverted order with the store's. When the re-fetch itself
// fails the pre-reorder order stays visible.
func (srv *linkService) resync(ctx context.Context, userID uuid.UUID, plan *linkorder.Plan) {
	authoritative, err := srv.loadLinks(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to re-fetch links after reorder failure",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)

		return
	}

	plan.Resync(authoritative)
}

func (srv *linkService) loadLinks(ctx context.Context, userID uuid.UUID) ([]*entity.Link, error) {
	var links []*entity.Link

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewLinkRepository().ListLinks(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list links")
		}
		links = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	linkorder.Sort(links)

	return links, nil
}

// findOwnedLink hides links of other users behind ErrLinkNotFound.
func findOwnedLink(ctx context.Context, linkRepo repository.LinkRepository, userID, linkID uuid.UUID) (*entity.Link, error) {
	link, err := linkRepo.FindLinkByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, repository.ErrLinkNotFound) {
			return nil, domainerrors.ErrLinkNotFound.WrapMessage("link not found")
		}

		return nil, errors.Wrap(err, "failed to find link")
	}

	if link.UserID != userID {
		return nil, domainerrors.ErrLinkNotFound.WrapMessage("link not found")
	}

	return link, nil
}

// buildLinkDetails turns the flat input into the tagged variant and validates it.
func buildLinkDetails(input *usecase.LinkInput) (entity.LinkDetails, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerrors.ErrInvalidLink.WrapMessage("title is required")
	}
	if strings.TrimSpace(input.URL) == "" {
		return nil, domainerrors.ErrInvalidLink.WrapMessage("url is required")
	}

	var details entity.LinkDetails
	switch input.Type {
	case entity.LinkTypeGeneral, "":
		details = entity.GeneralDetails{Description: input.Description}
	case entity.LinkTypeSocial:
		details = entity.SocialDetails{Platform: strings.TrimSpace(input.Platform)}
	case entity.LinkTypeProduct:
		details = entity.ProductDetails{
			Description: input.Description,
			ImageURL:    input.ImageURL,
			Price:       input.Price,
		}
	case entity.LinkTypeEmbed:
		details = entity.EmbedDetails{EmbedType: input.EmbedType}
	default:
		return nil, domainerrors.ErrInvalidLink.WrapMessage("unknown link type " + string(input.Type))
	}

	if err := details.Validate(); err != nil {
		return nil, domainerrors.ErrInvalidLink.WrapMessage(err.Error())
	}

	return details, nil
}
