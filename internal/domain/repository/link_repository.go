// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"biolink/internal/domain/entity"
	"biolink/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for link persistence.
var (
	// ErrLinkNotFound is returned when a link does not exist or is not owned by the caller.
	ErrLinkNotFound = errors.New("link not found")
)

// LinkRepository defines the operations of the link store.
type LinkRepository interface {
	// ListLinks returns the user's links ordered by position ascending.
	ListLinks(ctx context.Context, userID uuid.UUID) ([]*entity.Link, error)

	// FindLinkByID retrieves a single link by id regardless of owner.
	FindLinkByID(ctx context.Context, id uuid.UUID) (*entity.Link, error)

	// CreateLink persists a new link. The caller assigns ID and Position.
	CreateLink(ctx context.Context, link *entity.Link) error

	// UpdateLink modifies the editable fields of a link owned by link.UserID.
	UpdateLink(ctx context.Context, link *entity.Link) error

	// UpdateLinkPosition writes a single position. Returns ErrLinkNotFound when no row of the user matched.
	UpdateLinkPosition(ctx context.Context, userID, linkID uuid.UUID, position int) error

	// DeleteLink hard-deletes a link owned by userID. Positions of other links are left untouched.
	DeleteLink(ctx context.Context, userID, linkID uuid.UUID) error

	// IncrementClickCount adds one to the link's click counter.
	IncrementClickCount(ctx context.Context, linkID uuid.UUID) error
}
