// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"biolink/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)
}

// --- Input DTOs ---

// UpdateProfileInput defines the data required to create or update a profile.
// Nil fields are left unchanged; Username is required when the profile does not exist yet.
type UpdateProfileInput struct {
	Username      *string `json:"username,omitempty"`
	DisplayName   *string `json:"display_name,omitempty"`
	Bio           *string `json:"bio,omitempty"`
	AvatarURL     *string `json:"avatar_url,omitempty"`
	TemplateID    *string `json:"template_id,omitempty"`
	ThemeColor    *string `json:"theme_color,omitempty"`
	ButtonStyle   *string `json:"button_style,omitempty"`
	FontFamily    *string `json:"font_family,omitempty"`
	AnimationType *string `json:"animation_type,omitempty"`
}
