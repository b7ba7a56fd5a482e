package style

import (
	"encoding/json"
	"testing"

	"biolink/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestResolve_Deterministic(t *testing.T) {
	layers := Layers{
		Override: &entity.UserTemplateOverride{
			ButtonStyle:  strPtr("pill"),
			GradientFrom: strPtr("#000000"),
			GradientTo:   strPtr("#ffffff"),
		},
		Profile: &entity.Profile{TemplateID: "custom", ThemeColor: strPtr("blue")},
	}

	first, err := json.Marshal(Resolve("custom", layers))
	require.NoError(t, err)
	second, err := json.Marshal(Resolve("custom", layers))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolve_ButtonStylePrecedence(t *testing.T) {
	override := &entity.UserTemplateOverride{ButtonStyle: strPtr("rounded")}
	profile := &entity.Profile{ButtonStyle: strPtr("outline")}

	got := Resolve(TemplateDefault, Layers{Override: override, Profile: profile})
	assert.Equal(t, "rounded", got.Button.Style, "override wins")

	got = Resolve(TemplateDefault, Layers{Profile: profile})
	assert.Equal(t, "outline", got.Button.Style, "profile wins without override")

	got = Resolve(TemplateDefault, Layers{})
	assert.Equal(t, "default", got.Button.Style, "template preset")

	got = Resolve("elegant-dark", Layers{})
	assert.Equal(t, "outline", got.Button.Style, "template preset of elegant-dark")
}

func TestResolve_DraftAboveOverride(t *testing.T) {
	layers := Layers{
		Draft:    &entity.StyleDraft{FontFamily: strPtr("lora")},
		Override: &entity.UserTemplateOverride{FontFamily: strPtr("inter")},
	}

	got := Resolve(TemplateDefault, layers)
	assert.Equal(t, "lora", got.Font.Family)
	assert.Equal(t, "font-lora", got.Font.Class)
}

func TestResolve_BlankValuesAreIgnored(t *testing.T) {
	layers := Layers{
		Override: &entity.UserTemplateOverride{FontFamily: strPtr("  ")},
		Profile:  &entity.Profile{FontFamily: strPtr("roboto")},
	}

	got := Resolve(TemplateDefault, layers)
	assert.Equal(t, "roboto", got.Font.Family)
}

func TestResolve_CustomGradientBeatsFlatColor(t *testing.T) {
	layers := Layers{
		Override: &entity.UserTemplateOverride{
			CustomColor:  strPtr("#ff0000"),
			GradientFrom: strPtr("#111111"),
			GradientTo:   strPtr("#222222"),
		},
	}

	got := Resolve(TemplateCustom, layers)
	assert.Equal(t, entity.BackgroundGradient, got.Background.Kind)
	assert.Equal(t, "#111111", got.Background.GradientFrom)
	assert.Equal(t, "#222222", got.Background.GradientTo)
	assert.Empty(t, got.Background.Color)
	assert.Equal(t, "background-image: linear-gradient(135deg, #111111, #222222)", got.Background.CSS)
}

func TestResolve_CustomFlatColor(t *testing.T) {
	layers := Layers{
		Override: &entity.UserTemplateOverride{
			CustomColor:  strPtr("#ff0000"),
			GradientFrom: strPtr("#111111"),
		},
	}

	got := Resolve(TemplateCustom, layers)
	assert.Equal(t, entity.BackgroundColor, got.Background.Kind)
	assert.Equal(t, "#ff0000", got.Background.Color)
}

func TestResolve_CustomFallsBackToThemePastel(t *testing.T) {
	tests := []struct {
		theme string
		from  string
		to    string
	}{
		{"purple", "#f3e8ff", "#e9d5ff"},
		{"blue", "#dbeafe", "#bfdbfe"},
		{"pink", "#fce7f3", "#fbcfe8"},
		{"orange", "#ffedd5", "#fed7aa"},
		{"teal", "#f3e8ff", "#e9d5ff"},
	}

	for _, tt := range tests {
		t.Run(tt.theme, func(t *testing.T) {
			got := Resolve(TemplateCustom, Layers{Profile: &entity.Profile{ThemeColor: strPtr(tt.theme)}})
			assert.Equal(t, entity.BackgroundGradient, got.Background.Kind)
			assert.Equal(t, tt.from, got.Background.GradientFrom)
			assert.Equal(t, tt.to, got.Background.GradientTo)
		})
	}
}

func TestResolve_CustomIgnoresDescriptorBackground(t *testing.T) {
	got := Resolve(TemplateCustom, Layers{})

	assert.Equal(t, entity.BackgroundGradient, got.Background.Kind)
	assert.Equal(t, DefaultThemeColor, got.ThemeColor)
}

func TestResolve_PresetTemplateKeepsPresetBackground(t *testing.T) {
	layers := Layers{
		Override: &entity.UserTemplateOverride{CustomColor: strPtr("#ff0000")},
	}

	got := Resolve("minimal", layers)
	assert.Equal(t, entity.BackgroundColor, got.Background.Kind)
	assert.Equal(t, "#f9fafb", got.Background.Color)
}

func TestResolve_UnknownTemplateEqualsDefault(t *testing.T) {
	layers := Layers{Profile: &entity.Profile{ThemeColor: strPtr("pink")}}

	assert.Equal(t, Resolve(TemplateDefault, layers), Resolve("nonexistent-id", layers))
	assert.Equal(t, Resolve(TemplateDefault, Layers{}), Resolve("", Layers{}))
}

func TestResolve_TextColor(t *testing.T) {
	tests := []struct {
		templateID string
		want       string
	}{
		{TemplateDefault, TextDark},
		{"minimal", TextDark},
		{"ocean", TextDark},
		{"nature", TextDark},
		{TemplateCustom, TextDark},
		{TemplateElegantDark, TextLight},
		{TemplateGradient, TextLight},
		{"neon", TextLight},
		{"aurora", TextLight},
	}

	for _, tt := range tests {
		t.Run(tt.templateID, func(t *testing.T) {
			got := Resolve(tt.templateID, Layers{})
			assert.Equal(t, tt.want, got.TextColor)
			if tt.want == TextLight {
				assert.Equal(t, "text-white", got.Header)
			} else {
				assert.Equal(t, "text-gray-900", got.Header)
			}
		})
	}
}

func TestResolve_UnknownEnumsFallBack(t *testing.T) {
	layers := Layers{
		Override: &entity.UserTemplateOverride{
			ButtonStyle:   strPtr("wobbly"),
			FontFamily:    strPtr("comic-sans"),
			ThemeColor:    strPtr("chartreuse"),
			AnimationType: strPtr("spin"),
		},
	}

	got := Resolve(TemplateDefault, layers)
	assert.Equal(t, DefaultButtonStyle, got.Button.Style)
	assert.Equal(t, buttons[DefaultButtonStyle].class, got.Button.Class)
	assert.Equal(t, DefaultFont, got.Font.Family)
	assert.Equal(t, "font-sans", got.Font.Class)
	assert.Equal(t, DefaultThemeColor, got.ThemeColor)
	assert.Equal(t, DefaultAnimationType, got.AnimationType)
}

func TestResolve_AnimationPrecedence(t *testing.T) {
	assert.Equal(t, "pulse", Resolve("neon", Layers{}).AnimationType)
	assert.Equal(t, "none", Resolve(TemplateDefault, Layers{}).AnimationType)

	got := Resolve("neon", Layers{Profile: &entity.Profile{AnimationType: strPtr("bounce")}})
	assert.Equal(t, "bounce", got.AnimationType)
}

func TestResolve_AlwaysFullyPopulated(t *testing.T) {
	ids := []string{"", "nonexistent-id"}
	for _, tpl := range Templates() {
		ids = append(ids, tpl.ID)
	}

	for _, id := range ids {
		got := Resolve(id, Layers{})
		assert.NotEmpty(t, got.TemplateID, id)
		assert.NotEmpty(t, got.ThemeColor, id)
		assert.NotEmpty(t, got.AnimationType, id)
		assert.NotEmpty(t, got.Background.Kind, id)
		assert.NotEmpty(t, got.Background.CSS, id)
		assert.NotEmpty(t, got.Background.Class, id)
		assert.NotEmpty(t, got.Container, id)
		assert.NotEmpty(t, got.Avatar, id)
		assert.NotEmpty(t, got.Header, id)
		assert.NotEmpty(t, got.Button.Style, id)
		assert.NotEmpty(t, got.Button.Class, id)
		assert.NotEmpty(t, got.Button.PreviewStyle, id)
		assert.NotEmpty(t, got.Font.Family, id)
		assert.NotEmpty(t, got.Font.Class, id)
		assert.NotEmpty(t, got.Font.PreviewStyle, id)
		assert.NotEmpty(t, got.TextColor, id)
	}
}

func TestSelectTemplateID(t *testing.T) {
	assert.Equal(t, TemplateDefault, SelectTemplateID(Layers{}))
	assert.Equal(t, "minimal", SelectTemplateID(Layers{Profile: &entity.Profile{TemplateID: "minimal"}}))

	layers := Layers{
		Draft:    &entity.StyleDraft{TemplateID: strPtr("neon")},
		Override: &entity.UserTemplateOverride{TemplateID: strPtr("ocean")},
		Profile:  &entity.Profile{TemplateID: "minimal"},
	}
	assert.Equal(t, "neon", SelectTemplateID(layers))

	layers.Draft = nil
	assert.Equal(t, "ocean", SelectTemplateID(layers))
}

func TestTables(t *testing.T) {
	assert.Len(t, FontFamilies(), 15)
	assert.Len(t, ButtonStyles(), 6)
	assert.ElementsMatch(t, []string{"blue", "orange", "pink", "purple"}, ThemeColors())
	assert.True(t, IsKnownTemplate(TemplateCustom))
	assert.False(t, IsKnownTemplate("nonexistent-id"))
}
