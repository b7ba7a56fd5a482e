// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// LinkType tags the variant carried by a Link.
type LinkType string

const (
	LinkTypeGeneral LinkType = "general"
	LinkTypeSocial  LinkType = "social"
	LinkTypeProduct LinkType = "product"
	LinkTypeEmbed   LinkType = "embed"
)

// EmbedType is the provider of an embedded media link.
type EmbedType string

const (
	EmbedTypeYouTube    EmbedType = "youtube"
	EmbedTypeVimeo      EmbedType = "vimeo"
	EmbedTypeSpotify    EmbedType = "spotify"
	EmbedTypeSoundCloud EmbedType = "soundcloud"
	EmbedTypeTikTok     EmbedType = "tiktok"
)

// Link is a single entry on a user's public page.
// Position defines display order; it is only guaranteed contiguous right after a reorder.
type Link struct {
	ID         uuid.UUID   // The Global Unique Identifier (GUID) for the link.
	UserID     uuid.UUID   // Owner of the link.
	Title      string      // Text shown on the button.
	URL        string      // Destination URL.
	Icon       string      // Icon name; for social links this is the platform icon.
	Position   int         // Rank in display order, ascending.
	ClickCount int64       // Number of recorded clicks.
	Details    LinkDetails // Type-specific fields; never nil for a stored link.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Type returns the variant tag of the link.
func (l *Link) Type() LinkType {
	if l.Details == nil {
		return LinkTypeGeneral
	}

	return l.Details.Type()
}

// Clone returns a shallow copy of the link. Details values are immutable so sharing them is safe.
func (l *Link) Clone() *Link {
	if l == nil {
		return nil
	}
	cloned := *l

	return &cloned
}

// LinkDetails is implemented by each link variant.
type LinkDetails interface {
	Type() LinkType
	// Validate checks the variant-specific required fields.
	Validate() error
}

// GeneralDetails is a plain link.
type GeneralDetails struct {
	Description string
}

func (GeneralDetails) Type() LinkType { return LinkTypeGeneral }

func (GeneralDetails) Validate() error { return nil }

// SocialDetails points at a social network profile.
type SocialDetails struct {
	Platform string
}

func (SocialDetails) Type() LinkType { return LinkTypeSocial }

func (d SocialDetails) Validate() error {
	if d.Platform == "" {
		return ErrSocialPlatformRequired
	}

	return nil
}

// ProductDetails advertises a product with a price.
type ProductDetails struct {
	Description string
	ImageURL    string
	Price       float64
}

func (ProductDetails) Type() LinkType { return LinkTypeProduct }

func (d ProductDetails) Validate() error {
	if d.Price < 0 {
		return ErrNegativePrice
	}

	return nil
}

// EmbedDetails renders an embedded media player instead of a button.
type EmbedDetails struct {
	EmbedType EmbedType
}

func (EmbedDetails) Type() LinkType { return LinkTypeEmbed }

func (d EmbedDetails) Validate() error {
	switch d.EmbedType {
	case EmbedTypeYouTube, EmbedTypeVimeo, EmbedTypeSpotify, EmbedTypeSoundCloud, EmbedTypeTikTok:
		return nil
	default:
		return ErrUnknownEmbedType
	}
}

// MarshalJSON renders the link flat, with the variant fields next to the common ones.
func (l *Link) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		PublicLink
		UserID     uuid.UUID `json:"user_id"`
		Position   int       `json:"position"`
		ClickCount int64     `json:"click_count"`
		CreatedAt  time.Time `json:"created_at"`
		UpdatedAt  time.Time `json:"updated_at"`
	}{
		PublicLink: NewPublicLink(l),
		UserID:     l.UserID,
		Position:   l.Position,
		ClickCount: l.ClickCount,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	})
}
