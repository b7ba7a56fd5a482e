package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel is the GORM-specific struct for the 'profiles' table.
// One row per user; the style columns are the legacy per-profile overrides.
type ProfileModel struct {
	UserID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Username      string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	DisplayName   string    `gorm:"type:varchar(255);not null;default:''"`
	Bio           string    `gorm:"type:text;not null;default:''"`
	AvatarURL     string    `gorm:"type:text;not null;default:''"`
	TemplateID    string    `gorm:"type:varchar(64);not null;default:'default'"`
	ThemeColor    *string   `gorm:"type:varchar(32)"`
	ButtonStyle   *string   `gorm:"type:varchar(32)"`
	FontFamily    *string   `gorm:"type:varchar(64)"`
	AnimationType *string   `gorm:"type:varchar(32)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// UserTemplateModel is the GORM-specific struct for the 'user_templates' table.
// It stores at most one template override per user.
type UserTemplateModel struct {
	UserID        uuid.UUID `gorm:"type:uuid;primary_key"`
	TemplateID    *string   `gorm:"type:varchar(64)"`
	ButtonStyle   *string   `gorm:"type:varchar(32)"`
	FontFamily    *string   `gorm:"type:varchar(64)"`
	ThemeColor    *string   `gorm:"type:varchar(32)"`
	AnimationType *string   `gorm:"type:varchar(32)"`
	CustomColor   *string   `gorm:"type:varchar(64)"`
	GradientFrom  *string   `gorm:"type:varchar(64)"`
	GradientTo    *string   `gorm:"type:varchar(64)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserTemplateModel) TableName() string {
	return "user_templates"
}
