package entity

import "github.com/google/uuid"

// PublicPage is everything a visitor's browser needs to render a profile.
type PublicPage struct {
	UserID      uuid.UUID      `json:"user_id"`
	Username    string         `json:"username"`
	DisplayName string         `json:"display_name"`
	Bio         string         `json:"bio"`
	AvatarURL   string         `json:"avatar_url"`
	Style       EffectiveStyle `json:"style"`
	Links       []PublicLink   `json:"links"`
}

// PublicLink is the visitor-facing projection of a Link.
type PublicLink struct {
	ID          uuid.UUID `json:"id"`
	Type        LinkType  `json:"type"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Icon        string    `json:"icon,omitempty"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Platform    string    `json:"platform,omitempty"`
	EmbedType   EmbedType `json:"embed_type,omitempty"`
}

// NewPublicLink projects a link for visitors.
func NewPublicLink(l *Link) PublicLink {
	pl := PublicLink{
		ID:    l.ID,
		Type:  l.Type(),
		Title: l.Title,
		URL:   l.URL,
		Icon:  l.Icon,
	}

	switch d := l.Details.(type) {
	case GeneralDetails:
		pl.Description = d.Description
	case SocialDetails:
		pl.Platform = d.Platform
	case ProductDetails:
		price := d.Price
		pl.Description = d.Description
		pl.ImageURL = d.ImageURL
		pl.Price = &price
	case EmbedDetails:
		pl.EmbedType = d.EmbedType
	}

	return pl
}
