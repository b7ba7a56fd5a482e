package usecase

import (
	"context"

	"biolink/internal/domain/entity"

	"github.com/google/uuid"
)

// PublicPageUsecase serves the visitor-facing page and its QR codes.
type PublicPageUsecase interface {
	// GetPublicPage returns the page of username, from cache when possible
	GetPublicPage(ctx context.Context, username string) (*entity.PublicPage, error)

	// GetPublicQRCode returns a PNG QR code for the page of username
	GetPublicQRCode(ctx context.Context, username string) ([]byte, error)

	// GetOwnQRCode returns a PNG QR code for the caller's own page
	GetOwnQRCode(ctx context.Context, userID uuid.UUID) ([]byte, error)
}
