package entity

import "biolink/internal/errors"

// Validation errors returned by LinkDetails.Validate.
var (
	ErrSocialPlatformRequired = errors.New("social link requires a platform")
	ErrNegativePrice          = errors.New("product price must not be negative")
	ErrUnknownEmbedType       = errors.New("unknown embed type")
)
