package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// accent is the warm LED orange used for primary buttons and focus.
var accent = color.NRGBA{R: 255, G: 106, B: 0, A: 255}

// LightLineTheme wraps the default Fyne theme with compact sizing and the
// LED accent color.
type LightLineTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	fixed   bool // false follows the system light/dark setting
}

// NewLightLineTheme creates a theme that follows the system variant.
func NewLightLineTheme() *LightLineTheme {
	return &LightLineTheme{base: theme.DefaultTheme()}
}

// NewLightLineThemeWithVariant creates a theme locked to a light or dark variant.
func NewLightLineThemeWithVariant(variant fyne.ThemeVariant) *LightLineTheme {
	return &LightLineTheme{
		base:    theme.DefaultTheme(),
		variant: variant,
		fixed:   true,
	}
}

func (t *LightLineTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.fixed {
		variant = t.variant
	}
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return accent
	}
	return t.base.Color(name, variant)
}

func (t *LightLineTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *LightLineTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides so the sidebar fits beside the canvas.
func (t *LightLineTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 9
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 16
	default:
		return t.base.Size(name)
	}
}
