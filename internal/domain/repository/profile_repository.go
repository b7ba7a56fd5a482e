package repository

import (
	"context"

	"biolink/internal/domain/entity"
	"biolink/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for profile and template persistence.
var (
	// ErrProfileNotFound is returned when a user has no profile.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrUsernameTaken is returned when another user already owns the username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrTemplateOverrideNotFound is returned when a user never customized a template.
	ErrTemplateOverrideNotFound = errors.New("template override not found")
)

// ProfileRepository defines the operations of the profile store.
type ProfileRepository interface {
	// GetProfile retrieves the profile of a user.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// GetProfileByUsername retrieves a profile by its public username.
	GetProfileByUsername(ctx context.Context, username string) (*entity.Profile, error)

	// UpdateProfile creates or replaces the profile of profile.UserID.
	UpdateProfile(ctx context.Context, profile *entity.Profile) error
}

// UserTemplateRepository defines the operations of the template override store.
type UserTemplateRepository interface {
	// GetUserTemplateOverride retrieves the override of a user.
	GetUserTemplateOverride(ctx context.Context, userID uuid.UUID) (*entity.UserTemplateOverride, error)

	// UpsertUserTemplateOverride creates the override on first customization and updates it in place afterwards.
	UpsertUserTemplateOverride(ctx context.Context, override *entity.UserTemplateOverride) error
}
