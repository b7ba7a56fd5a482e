package entity

// BackgroundKind selects how a page background is painted.
type BackgroundKind string

const (
	BackgroundColor    BackgroundKind = "color"
	BackgroundGradient BackgroundKind = "gradient"
	BackgroundImage    BackgroundKind = "image"
	BackgroundAnimated BackgroundKind = "animated"
)

// Background holds the parameters for one BackgroundKind; unused fields are empty.
type Background struct {
	Kind         BackgroundKind `json:"kind"`
	Color        string         `json:"color,omitempty"`
	GradientFrom string         `json:"gradient_from,omitempty"`
	GradientTo   string         `json:"gradient_to,omitempty"`
	ImageURL     string         `json:"image_url,omitempty"`
	OverlayColor string         `json:"overlay_color,omitempty"`
	Animation    string         `json:"animation,omitempty"`
}

// TemplateDescriptor is a static, build-time preset.
type TemplateDescriptor struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ButtonStyle string     `json:"button_style"`
	FontFamily  string     `json:"font_family"`
	Background  Background `json:"background"`
	Animated    bool       `json:"animated"`
}

// EffectiveStyle is the fully resolved style consumed by every renderer.
// Every field is populated; renderers apply it without further interpretation.
type EffectiveStyle struct {
	TemplateID    string          `json:"template_id"`
	ThemeColor    string          `json:"theme_color"`
	AnimationType string          `json:"animation_type"`
	Background    ResolvedSurface `json:"background"`
	Container     string          `json:"container_class"`
	Avatar        string          `json:"avatar_class"`
	Header        string          `json:"header_class"`
	Button        ResolvedButton  `json:"button"`
	Font          ResolvedFont    `json:"font"`
	TextColor     string          `json:"text_color"`
}

// ResolvedSurface is a background plus its ready-to-apply CSS.
type ResolvedSurface struct {
	Background
	Class string `json:"class"`
	CSS   string `json:"css"`
}

// ResolvedButton is the link button look.
type ResolvedButton struct {
	Style        string `json:"style"`
	Class        string `json:"class"`
	PreviewStyle string `json:"preview_style"`
}

// ResolvedFont is the page font.
type ResolvedFont struct {
	Family       string `json:"family"`
	Class        string `json:"class"`
	PreviewStyle string `json:"preview_style"`
}
