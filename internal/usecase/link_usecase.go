package usecase

import (
	"context"

	"biolink/internal/domain/entity"
	"biolink/internal/domain/linkorder"

	"github.com/google/uuid"
)

// LinkUsecase defines the link management use cases. Mutations of one user's
// links are serialized.
type LinkUsecase interface {
	// ListLinks returns the user's links in display order
	ListLinks(ctx context.Context, userID uuid.UUID) ([]*entity.Link, error)

	// CreateLink appends a link after the current last position
	CreateLink(ctx context.Context, userID uuid.UUID, input *LinkInput) (*entity.Link, error)

	// UpdateLink edits a link in place; its position is kept
	UpdateLink(ctx context.Context, userID, linkID uuid.UUID, input *LinkInput) (*entity.Link, error)

	// DeleteLink hard-deletes a link without renumbering the others
	DeleteLink(ctx context.Context, userID, linkID uuid.UUID) error

	// ReorderLinks moves one link and persists every changed position in one transaction.
	// On persistence failure the returned result still carries the re-fetched order.
	ReorderLinks(ctx context.Context, userID uuid.UUID, input *ReorderInput) (*ReorderResult, error)
}

// LinkInput describes a link to create or update. Type-specific fields are
// ignored when they do not apply to Type.
type LinkInput struct {
	Type        entity.LinkType  `json:"type"`
	Title       string           `json:"title"`
	URL         string           `json:"url"`
	Icon        string           `json:"icon,omitempty"`
	Description string           `json:"description,omitempty"`
	ImageURL    string           `json:"image_url,omitempty"`
	Price       float64          `json:"price,omitempty"`
	Platform    string           `json:"platform,omitempty"`
	EmbedType   entity.EmbedType `json:"embed_type,omitempty"`
}

// ReorderInput is a single move in list-splice semantics.
type ReorderInput struct {
	SourceIndex      int `json:"source_index"`
	DestinationIndex int `json:"destination_index"`
}

// ReorderResult reports the outcome of a reorder.
type ReorderResult struct {
	Links     []*entity.Link             `json:"links"`
	State     linkorder.State            `json:"state"`
	Persisted bool                       `json:"persisted"`
	Reverted  bool                       `json:"reverted"`
	Updates   []linkorder.PositionUpdate `json:"updates,omitempty"`
}
