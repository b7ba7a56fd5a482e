// Package style resolves templates and per-user overrides into a single EffectiveStyle.
//
// Every renderer (editor preview, public page, template preview) goes through Resolve,
// so the precedence and defaulting rules live here and nowhere else.
package style

import (
	"slices"

	"biolink/internal/domain/entity"
)

// Template identifiers with special meaning.
const (
	TemplateDefault     = "default"
	TemplateCustom      = "custom"
	TemplateElegantDark = "elegant-dark"
	TemplateGradient    = "gradient"
)

var catalog = []entity.TemplateDescriptor{
	{
		ID:          TemplateDefault,
		Name:        "Default",
		Description: "Clean white page with solid buttons",
		ButtonStyle: "default",
		FontFamily:  "default",
		Background:  entity.Background{Kind: entity.BackgroundColor, Color: "#ffffff"},
	},
	{
		ID:          "minimal",
		Name:        "Minimal",
		Description: "Soft grey canvas and understated text buttons",
		ButtonStyle: "minimal",
		FontFamily:  "inter",
		Background:  entity.Background{Kind: entity.BackgroundColor, Color: "#f9fafb"},
	},
	{
		ID:          TemplateElegantDark,
		Name:        "Elegant Dark",
		Description: "Near-black background with serif headings",
		ButtonStyle: "outline",
		FontFamily:  "playfair",
		Background:  entity.Background{Kind: entity.BackgroundColor, Color: "#111827"},
	},
	{
		ID:          TemplateGradient,
		Name:        "Gradient",
		Description: "Violet to pink gradient with pill buttons",
		ButtonStyle: "pill",
		FontFamily:  "poppins",
		Background: entity.Background{
			Kind:         entity.BackgroundGradient,
			GradientFrom: "#8b5cf6",
			GradientTo:   "#ec4899",
		},
	},
	{
		ID:          "ocean",
		Name:        "Ocean",
		Description: "Pale sky to sea blue",
		ButtonStyle: "rounded",
		FontFamily:  "nunito",
		Background: entity.Background{
			Kind:         entity.BackgroundGradient,
			GradientFrom: "#e0f2fe",
			GradientTo:   "#7dd3fc",
		},
	},
	{
		ID:          "nature",
		Name:        "Nature",
		Description: "Forest photo behind a light wash",
		ButtonStyle: "rounded",
		FontFamily:  "lora",
		Background: entity.Background{
			Kind:         entity.BackgroundImage,
			ImageURL:     "https://images.unsplash.com/photo-1441974231531-c6227db76b6e",
			OverlayColor: "rgba(255, 255, 255, 0.55)",
		},
	},
	{
		ID:          "neon",
		Name:        "Neon",
		Description: "Pulsing neon glow on a midnight gradient",
		ButtonStyle: "shadow",
		FontFamily:  "bebas-neue",
		Background: entity.Background{
			Kind:         entity.BackgroundAnimated,
			GradientFrom: "#0f172a",
			GradientTo:   "#581c87",
			Animation:    "neon-pulse",
		},
		Animated: true,
	},
	{
		ID:          "aurora",
		Name:        "Aurora",
		Description: "Slowly shifting northern lights",
		ButtonStyle: "pill",
		FontFamily:  "montserrat",
		Background: entity.Background{
			Kind:         entity.BackgroundAnimated,
			GradientFrom: "#064e3b",
			GradientTo:   "#1e3a8a",
			Animation:    "aurora",
		},
		Animated: true,
	},
	{
		ID:          TemplateCustom,
		Name:        "Custom",
		Description: "Your own colors or gradient",
		ButtonStyle: "default",
		FontFamily:  "default",
		Background:  entity.Background{Kind: entity.BackgroundColor, Color: "#ffffff"},
	},
}

// Templates returns the catalog in display order. The returned slice is a copy.
func Templates() []entity.TemplateDescriptor {
	return slices.Clone(catalog)
}

// Lookup returns the descriptor for id and whether it exists.
func Lookup(id string) (entity.TemplateDescriptor, bool) {
	for _, tpl := range catalog {
		if tpl.ID == id {
			return tpl, true
		}
	}

	return entity.TemplateDescriptor{}, false
}

// IsKnownTemplate reports whether id names a catalog entry.
func IsKnownTemplate(id string) bool {
	_, ok := Lookup(id)

	return ok
}

func lookupOrDefault(id string) entity.TemplateDescriptor {
	if tpl, ok := Lookup(id); ok {
		return tpl
	}
	tpl, _ := Lookup(TemplateDefault)

	return tpl
}
