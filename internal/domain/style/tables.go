package style

import "slices"

type fontSpec struct {
	class   string
	preview string
}

type buttonSpec struct {
	class   string
	preview string
}

type gradientPair struct {
	from string
	to   string
}

// Global defaults used when no layer supplies a value.
const (
	DefaultFont          = "default"
	DefaultButtonStyle   = "default"
	DefaultThemeColor    = "purple"
	DefaultAnimationType = "none"
)

var fonts = map[string]fontSpec{
	"default":         {"font-sans", "font-family: ui-sans-serif, system-ui, sans-serif"},
	"inter":           {"font-inter", "font-family: 'Inter', sans-serif"},
	"roboto":          {"font-roboto", "font-family: 'Roboto', sans-serif"},
	"poppins":         {"font-poppins", "font-family: 'Poppins', sans-serif"},
	"montserrat":      {"font-montserrat", "font-family: 'Montserrat', sans-serif"},
	"open-sans":       {"font-open-sans", "font-family: 'Open Sans', sans-serif"},
	"lato":            {"font-lato", "font-family: 'Lato', sans-serif"},
	"nunito":          {"font-nunito", "font-family: 'Nunito', sans-serif"},
	"raleway":         {"font-raleway", "font-family: 'Raleway', sans-serif"},
	"playfair":        {"font-playfair", "font-family: 'Playfair Display', serif"},
	"lora":            {"font-lora", "font-family: 'Lora', serif"},
	"merriweather":    {"font-merriweather", "font-family: 'Merriweather', serif"},
	"source-code-pro": {"font-source-code-pro", "font-family: 'Source Code Pro', monospace"},
	"dancing-script":  {"font-dancing-script", "font-family: 'Dancing Script', cursive"},
	"bebas-neue":      {"font-bebas-neue", "font-family: 'Bebas Neue', sans-serif"},
}

var buttons = map[string]buttonSpec{
	"default": {
		"w-full py-3 px-4 rounded-md bg-gray-900 text-white font-medium",
		"background-color: #111827; color: #ffffff; border-radius: 6px",
	},
	"rounded": {
		"w-full py-3 px-4 rounded-xl bg-gray-900 text-white font-medium",
		"background-color: #111827; color: #ffffff; border-radius: 12px",
	},
	"pill": {
		"w-full py-3 px-6 rounded-full bg-gray-900 text-white font-medium",
		"background-color: #111827; color: #ffffff; border-radius: 9999px",
	},
	"outline": {
		"w-full py-3 px-4 rounded-md border-2 border-current bg-transparent font-medium",
		"background-color: transparent; border: 2px solid currentColor; border-radius: 6px",
	},
	"shadow": {
		"w-full py-3 px-4 rounded-md bg-white text-gray-900 shadow-lg font-medium",
		"background-color: #ffffff; color: #111827; border-radius: 6px; box-shadow: 0 10px 15px -3px rgba(0, 0, 0, 0.3)",
	},
	"minimal": {
		"w-full py-2 px-2 bg-transparent underline underline-offset-4 font-medium",
		"background-color: transparent; text-decoration: underline",
	},
}

var themePastels = map[string]gradientPair{
	"purple": {"#f3e8ff", "#e9d5ff"},
	"blue":   {"#dbeafe", "#bfdbfe"},
	"pink":   {"#fce7f3", "#fbcfe8"},
	"orange": {"#ffedd5", "#fed7aa"},
}

var animationTypes = []string{"none", "fade-in", "slide-up", "bounce", "pulse"}

// FontFamilies lists the accepted font identifiers.
func FontFamilies() []string { return sortedKeys(fonts) }

// ButtonStyles lists the accepted button style identifiers.
func ButtonStyles() []string { return sortedKeys(buttons) }

// ThemeColors lists the accepted theme color names.
func ThemeColors() []string { return sortedKeys(themePastels) }

// AnimationTypes lists the accepted animation types.
func AnimationTypes() []string { return slices.Clone(animationTypes) }

func resolveFont(name string) (string, fontSpec) {
	if spec, ok := fonts[name]; ok {
		return name, spec
	}

	return DefaultFont, fonts[DefaultFont]
}

func resolveButton(name string) (string, buttonSpec) {
	if spec, ok := buttons[name]; ok {
		return name, spec
	}

	return DefaultButtonStyle, buttons[DefaultButtonStyle]
}

func resolveTheme(name string) (string, gradientPair) {
	if pair, ok := themePastels[name]; ok {
		return name, pair
	}

	return DefaultThemeColor, themePastels[DefaultThemeColor]
}

func resolveAnimation(name string) string {
	if slices.Contains(animationTypes, name) {
		return name
	}

	return DefaultAnimationType
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
