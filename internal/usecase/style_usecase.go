package usecase

import (
	"context"

	"biolink/internal/domain/entity"

	"github.com/google/uuid"
)

// StyleUsecase defines the template and style operations behind the editor, the
// template preview modal and the public page.
type StyleUsecase interface {
	// ListTemplates returns the static template catalog
	ListTemplates() []entity.TemplateDescriptor

	// GetTemplateOverride returns the stored override; a user who never customized gets an empty one
	GetTemplateOverride(ctx context.Context, userID uuid.UUID) (*entity.UserTemplateOverride, error)

	// UpdateTemplateOverride creates the override on first customization and updates it in place afterwards
	UpdateTemplateOverride(ctx context.Context, userID uuid.UUID, input *TemplateOverrideInput) (*entity.UserTemplateOverride, error)

	// GetEffectiveStyle resolves the stored configuration
	GetEffectiveStyle(ctx context.Context, userID uuid.UUID) (*entity.EffectiveStyle, error)

	// PreviewTemplate resolves a candidate template with the user's stored layers
	PreviewTemplate(ctx context.Context, userID uuid.UUID, templateID string) (*entity.EffectiveStyle, error)

	// PreviewDraft resolves the stored layers plus unsaved editor state
	PreviewDraft(ctx context.Context, userID uuid.UUID, draft *entity.StyleDraft) (*entity.EffectiveStyle, error)
}

// TemplateOverrideInput carries the override fields to change. Nil fields are left unchanged.
type TemplateOverrideInput struct {
	TemplateID    *string `json:"template_id,omitempty"`
	ButtonStyle   *string `json:"button_style,omitempty"`
	FontFamily    *string `json:"font_family,omitempty"`
	ThemeColor    *string `json:"theme_color,omitempty"`
	AnimationType *string `json:"animation_type,omitempty"`
	CustomColor   *string `json:"custom_color,omitempty"`
	GradientFrom  *string `json:"gradient_from,omitempty"`
	GradientTo    *string `json:"gradient_to,omitempty"`
}
