package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the public identity of a user plus the legacy style fields that predate
// UserTemplateOverride. Nil style fields mean "not set".
type Profile struct {
	UserID      uuid.UUID `json:"user_id"`  // Owner; one profile per user.
	Username    string    `json:"username"` // Unique handle used in the public URL.
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio"`
	AvatarURL   string    `json:"avatar_url"`
	TemplateID  string    `json:"template_id"` // Selected template; empty means "default".

	ThemeColor    *string `json:"theme_color,omitempty"`
	ButtonStyle   *string `json:"button_style,omitempty"`
	FontFamily    *string `json:"font_family,omitempty"`
	AnimationType *string `json:"animation_type,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserTemplateOverride supersedes individual template preset fields for one user.
type UserTemplateOverride struct {
	UserID        uuid.UUID `json:"user_id"`
	TemplateID    *string   `json:"template_id,omitempty"`
	ButtonStyle   *string   `json:"button_style,omitempty"`
	FontFamily    *string   `json:"font_family,omitempty"`
	ThemeColor    *string   `json:"theme_color,omitempty"`
	AnimationType *string   `json:"animation_type,omitempty"`
	CustomColor   *string   `json:"custom_color,omitempty"`
	GradientFrom  *string   `json:"gradient_from,omitempty"`
	GradientTo    *string   `json:"gradient_to,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// StyleDraft is unsaved editor state layered above the stored override.
type StyleDraft struct {
	TemplateID    *string `json:"template_id,omitempty"`
	ButtonStyle   *string `json:"button_style,omitempty"`
	FontFamily    *string `json:"font_family,omitempty"`
	ThemeColor    *string `json:"theme_color,omitempty"`
	AnimationType *string `json:"animation_type,omitempty"`
	CustomColor   *string `json:"custom_color,omitempty"`
	GradientFrom  *string `json:"gradient_from,omitempty"`
	GradientTo    *string `json:"gradient_to,omitempty"`
}
