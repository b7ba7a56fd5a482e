package style

import (
	"fmt"
	"strings"

	"biolink/internal/domain/entity"
)

// Text colors. Light text is used on dark or busy backgrounds.
const (
	TextLight = "#ffffff"
	TextDark  = "#1f2937"
)

// Layers are the override sources consulted above a template preset, highest first:
// Draft (unsaved editor state), Override (stored user template), Profile (legacy fields).
// Any layer may be nil.
type Layers struct {
	Draft    *entity.StyleDraft
	Override *entity.UserTemplateOverride
	Profile  *entity.Profile
}

// SelectTemplateID picks the template a user's page renders with:
// draft, then override, then profile, then "default".
func SelectTemplateID(layers Layers) string {
	d, o, p := layers.fields()
	if id := firstSet(d.templateID, o.templateID, p.templateID); id != "" {
		return id
	}

	return TemplateDefault
}

// Resolve merges templateID and layers into a fully populated EffectiveStyle.
// It is pure: the same inputs always produce the same output. Unknown template ids
// resolve exactly like "default"; unknown enum values fall back to their defaults.
func Resolve(templateID string, layers Layers) entity.EffectiveStyle {
	tpl := lookupOrDefault(strings.TrimSpace(templateID))
	d, o, p := layers.fields()

	buttonName, button := resolveButton(firstSetOr(tpl.ButtonStyle, d.buttonStyle, o.buttonStyle, p.buttonStyle))
	fontName, font := resolveFont(firstSetOr(tpl.FontFamily, d.fontFamily, o.fontFamily, p.fontFamily))
	themeName, pastel := resolveTheme(firstSet(d.themeColor, o.themeColor, p.themeColor))
	animation := resolveAnimation(firstSetOr(presetAnimation(tpl), d.animationType, o.animationType, p.animationType))

	bg := tpl.Background
	if tpl.ID == TemplateCustom {
		bg = customBackground(d, o, pastel)
	}

	light := usesLightText(tpl.ID, bg.Kind)
	textColor := TextDark
	container := "bg-white/80 backdrop-blur-sm rounded-2xl shadow-sm"
	avatar := "ring-4 ring-white shadow-md"
	header := "text-gray-900"
	if light {
		textColor = TextLight
		container = "bg-black/30 backdrop-blur-sm rounded-2xl"
		avatar = "ring-4 ring-white/40 shadow-lg"
		header = "text-white"
	}

	return entity.EffectiveStyle{
		TemplateID:    tpl.ID,
		ThemeColor:    themeName,
		AnimationType: animation,
		Background:    surface(bg),
		Container:     container,
		Avatar:        avatar,
		Header:        header,
		Button: entity.ResolvedButton{
			Style:        buttonName,
			Class:        button.class,
			PreviewStyle: button.preview,
		},
		Font: entity.ResolvedFont{
			Family:       fontName,
			Class:        font.class,
			PreviewStyle: font.preview,
		},
		TextColor: textColor,
	}
}

// ResolveFor selects the template from the layers and resolves it.
func ResolveFor(layers Layers) entity.EffectiveStyle {
	return Resolve(SelectTemplateID(layers), layers)
}

func presetAnimation(tpl entity.TemplateDescriptor) string {
	if tpl.Animated {
		return "pulse"
	}

	return DefaultAnimationType
}

// customBackground derives the "custom" template background from the override layers only.
// Both gradient endpoints beat a flat color; with neither, the theme pastel gradient is used.
func customBackground(d, o layerFields, pastel gradientPair) entity.Background {
	from := firstSet(d.gradientFrom, o.gradientFrom)
	to := firstSet(d.gradientTo, o.gradientTo)
	if from != "" && to != "" {
		return entity.Background{Kind: entity.BackgroundGradient, GradientFrom: from, GradientTo: to}
	}

	if color := firstSet(d.customColor, o.customColor); color != "" {
		return entity.Background{Kind: entity.BackgroundColor, Color: color}
	}

	return entity.Background{Kind: entity.BackgroundGradient, GradientFrom: pastel.from, GradientTo: pastel.to}
}

func usesLightText(templateID string, kind entity.BackgroundKind) bool {
	return templateID == TemplateElegantDark || templateID == TemplateGradient || kind == entity.BackgroundAnimated
}

func surface(bg entity.Background) entity.ResolvedSurface {
	s := entity.ResolvedSurface{Background: bg, Class: "min-h-screen"}

	switch bg.Kind {
	case entity.BackgroundGradient:
		s.CSS = fmt.Sprintf("background-image: linear-gradient(135deg, %s, %s)", bg.GradientFrom, bg.GradientTo)
	case entity.BackgroundImage:
		s.Class = "min-h-screen bg-cover bg-center"
		s.CSS = fmt.Sprintf("background-image: linear-gradient(%[1]s, %[1]s), url('%[2]s')", bg.OverlayColor, bg.ImageURL)
	case entity.BackgroundAnimated:
		s.Class = "min-h-screen animate-" + bg.Animation
		s.CSS = fmt.Sprintf("background-image: linear-gradient(135deg, %s, %s); background-size: 400%% 400%%", bg.GradientFrom, bg.GradientTo)
	default:
		s.Kind = entity.BackgroundColor
		s.CSS = "background-color: " + bg.Color
	}

	return s
}

// layerFields flattens one layer into optional string slots so precedence is a simple scan.
type layerFields struct {
	templateID    *string
	buttonStyle   *string
	fontFamily    *string
	themeColor    *string
	animationType *string
	customColor   *string
	gradientFrom  *string
	gradientTo    *string
}

func (l Layers) fields() (draft, override, profile layerFields) {
	if d := l.Draft; d != nil {
		draft = layerFields{
			templateID:    d.TemplateID,
			buttonStyle:   d.ButtonStyle,
			fontFamily:    d.FontFamily,
			themeColor:    d.ThemeColor,
			animationType: d.AnimationType,
			customColor:   d.CustomColor,
			gradientFrom:  d.GradientFrom,
			gradientTo:    d.GradientTo,
		}
	}

	if o := l.Override; o != nil {
		override = layerFields{
			templateID:    o.TemplateID,
			buttonStyle:   o.ButtonStyle,
			fontFamily:    o.FontFamily,
			themeColor:    o.ThemeColor,
			animationType: o.AnimationType,
			customColor:   o.CustomColor,
			gradientFrom:  o.GradientFrom,
			gradientTo:    o.GradientTo,
		}
	}

	if p := l.Profile; p != nil {
		profile = layerFields{
			buttonStyle:   p.ButtonStyle,
			fontFamily:    p.FontFamily,
			themeColor:    p.ThemeColor,
			animationType: p.AnimationType,
		}
		if p.TemplateID != "" {
			id := p.TemplateID
			profile.templateID = &id
		}
	}

	return draft, override, profile
}

// firstSet returns the first non-nil, non-blank value.
func firstSet(values ...*string) string {
	for _, v := range values {
		if v == nil {
			continue
		}
		if s := strings.TrimSpace(*v); s != "" {
			return s
		}
	}

	return ""
}

func firstSetOr(fallback string, values ...*string) string {
	if s := firstSet(values...); s != "" {
		return s
	}

	return fallback
}
