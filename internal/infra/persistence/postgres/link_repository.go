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
)

// linkRepository implements the repository.LinkRepository interface.
type linkRepository struct {
	db *gorm.DB
}

// NewLinkRepository is the constructor for linkRepository.
func NewLinkRepository(db *gorm.DB) repository.LinkRepository {
	return &linkRepository{
		db: db,
	}
}

// ListLinks returns the user's links ordered by position, then creation time.
func (repo *linkRepository) ListLinks(ctx context.Context, userID uuid.UUID) ([]*entity.Link, error) {
	var linkModels []*model.LinkModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("position ASC").
		Order("created_at ASC").
		Order("id ASC").
		Find(&linkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list links")
	}

	links := make([]*entity.Link, 0, len(linkModels))
	for _, linkM := range linkModels {
		links = append(links, toLinkDomain(linkM))
	}

	return links, nil
}

// FindLinkByID retrieves a single link by id.
func (repo *linkRepository) FindLinkByID(ctx context.Context, id uuid.UUID) (*entity.Link, error) {
	var linkM model.LinkModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find link by ID")
	}

	return toLinkDomain(&linkM), nil
}

// CreateLink persists a new link.
func (repo *linkRepository) CreateLink(ctx context.Context, link *entity.Link) error {
	linkM := fromLinkDomain(link)

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrLinkCreationFailed.WrapMessage("missing required link information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidLink.WrapMessage("link violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create link")
	}

	link.CreatedAt = linkM.CreatedAt
	link.UpdatedAt = linkM.UpdatedAt

	return nil
}

// UpdateLink modifies the editable fields of a link. Position and click count are never touched here.
func (repo *linkRepository) UpdateLink(ctx context.Context, link *entity.Link) error {
	linkM := fromLinkDomain(link)

	result := repo.db.WithContext(ctx).
		Model(&model.LinkModel{}).
		Where("id = ? AND user_id = ?", link.ID, link.UserID).
		Select("type", "title", "url", "icon", "description", "image_url", "price", "platform", "embed_type", "updated_at").
		Updates(linkM)

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidLink.WrapMessage("link violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update link")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLinkNotFound
	}

	return nil
}

// UpdateLinkPosition writes a single position.
func (repo *linkRepository) UpdateLinkPosition(ctx context.Context, userID, linkID uuid.UUID, position int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LinkModel{}).
		Where("id = ? AND user_id = ?", linkID, userID).
		Update("position", position)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update link position")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLinkNotFound
	}

	return nil
}

// DeleteLink hard-deletes a link.
func (repo *linkRepository) DeleteLink(ctx context.Context, userID, linkID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", linkID, userID).
		Delete(&model.LinkModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete link")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLinkNotFound
	}

	return nil
}

// IncrementClickCount adds one to the link's click counter.
func (repo *linkRepository) IncrementClickCount(ctx context.Context, linkID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LinkModel{}).
		Where("id = ?", linkID).
		UpdateColumn("click_count", gorm.Expr("click_count + ?", 1))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment click count")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLinkNotFound
	}

	return nil
}

// toLinkDomain resolves the flat columns into the tagged variant.
// Unknown stored types are read as general links.
func toLinkDomain(data *model.LinkModel) *entity.Link {
	link := &entity.Link{
		ID:         data.ID,
		UserID:     data.UserID,
		Title:      data.Title,
		URL:        data.URL,
		Icon:       data.Icon,
		Position:   data.Position,
		ClickCount: data.ClickCount,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}

	switch entity.LinkType(data.Type) {
	case entity.LinkTypeSocial:
		link.Details = entity.SocialDetails{Platform: data.Platform}
	case entity.LinkTypeProduct:
		details := entity.ProductDetails{Description: data.Description, ImageURL: data.ImageURL}
		if data.Price != nil {
			details.Price = *data.Price
		}
		link.Details = details
	case entity.LinkTypeEmbed:
		link.Details = entity.EmbedDetails{EmbedType: entity.EmbedType(data.EmbedType)}
	default:
		link.Details = entity.GeneralDetails{Description: data.Description}
	}

	return link
}

func fromLinkDomain(data *entity.Link) *model.LinkModel {
	linkM := &model.LinkModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Type:       string(data.Type()),
		Title:      data.Title,
		URL:        data.URL,
		Icon:       data.Icon,
		Position:   data.Position,
		ClickCount: data.ClickCount,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}

	switch d := data.Details.(type) {
	case entity.GeneralDetails:
		linkM.Description = d.Description
	case entity.SocialDetails:
		linkM.Platform = d.Platform
	case entity.ProductDetails:
		price := d.Price
		linkM.Description = d.Description
		linkM.ImageURL = d.ImageURL
		linkM.Price = &price
	case entity.EmbedDetails:
		linkM.EmbedType = string(d.EmbedType)
	}

	return linkM
}
