package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorScheme is a named bulb color cycle.
type ColorScheme struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Colors      []string `json:"colors"` // "#rrggbb"
}

// AnimationMode is a named light animation.
type AnimationMode struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Option pairs a numeric setting with its display label.
type Option struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// ColorSchemes lists the built-in color schemes in display order.
var ColorSchemes = []ColorScheme{
	{Name: "rgbw", Description: "RGBW Full Spectrum", Colors: []string{"#ff0000", "#00ff00", "#0000ff", "#ffffff"}},
	{Name: "rwb", Description: "RWB Patriotic", Colors: []string{"#ff0000", "#ffffff", "#0000ff"}},
	{Name: "christmas", Description: "Christmas Colors", Colors: []string{"#ff0000", "#00ff00", "#ffffff"}},
	{Name: "halloween", Description: "Halloween Colors", Colors: []string{"#ff8c00", "#800080", "#000000"}},
	{Name: "easter", Description: "Easter Pastels", Colors: []string{"#ffb6c1", "#98fb98", "#87ceeb", "#dda0dd"}},
	{Name: "warm", Description: "Warm White (2700K)", Colors: []string{"#fff8dc", "#ffefd5", "#ffe4b5"}},
	{Name: "cool", Description: "Cool White (5000K)", Colors: []string{"#f0f8ff", "#e6f3ff", "#ccf2ff"}},
	{Name: "custom", Description: "Custom Colors", Colors: []string{"#ff0000", "#00ff00", "#0000ff", "#ffff00"}},
}

var AnimationModes = []AnimationMode{
	{Name: "static", Description: "Static (No Animation)"},
	{Name: "twinkle", Description: "Twinkle Effect"},
	{Name: "chase", Description: "Chase Pattern"},
	{Name: "fade", Description: "Fade In/Out"},
	{Name: "rainbow", Description: "Rainbow Cycle"},
	{Name: "patriotic", Description: "Patriotic Wave"},
	{Name: "fireworks", Description: "Fireworks Burst"},
	{Name: "custom", Description: "Custom Pattern"},
}

// SpacingOptions are the supported bulb spacings in inches.
var SpacingOptions = []Option{
	{Value: 8, Label: "8 inches (Recommended)"},
	{Value: 9, Label: "9 inches"},
	{Value: 12, Label: "12 inches"},
	{Value: 16, Label: "16 inches"},
}

// ZoomLevels are the map zoom levels offered for aerial tracing.
var ZoomLevels = []Option{
	{Value: 18, Label: "18 - Wide Area"},
	{Value: 19, Label: "19 - Neighborhood"},
	{Value: 20, Label: "20 - Property Focus"},
	{Value: 21, Label: "21 - Maximum Detail"},
}

// FindColorScheme looks up a scheme by name. Unknown names fall back to
// the first scheme and report false.
func FindColorScheme(name string) (ColorScheme, bool) {
	for _, cs := range ColorSchemes {
		if strings.EqualFold(cs.Name, name) {
			return cs, true
		}
	}
	return ColorSchemes[0], false
}

// SchemeNames returns the names of all color schemes.
func SchemeNames() []string {
	names := make([]string, len(ColorSchemes))
	for i, cs := range ColorSchemes {
		names[i] = cs.Name
	}
	return names
}

func AnimationNames() []string {
	names := make([]string, len(AnimationModes))
	for i, am := range AnimationModes {
		names[i] = am.Name
	}
	return names
}

// SpacingLabels returns the labels of SpacingOptions, for select widgets.
func SpacingLabels() []string {
	labels := make([]string, len(SpacingOptions))
	for i, o := range SpacingOptions {
		labels[i] = o.Label
	}
	return labels
}

// SpacingFromLabel maps a SpacingLabels entry back to inches.
func SpacingFromLabel(label string) (float64, bool) {
	for _, o := range SpacingOptions {
		if o.Label == label {
			return float64(o.Value), true
		}
	}
	return 0, false
}

// ParseHexColor converts "#rrggbb" into an RGB.
func ParseHexColor(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// BulbColor returns the color of the i-th bulb in the scheme, cycling
// through its colors.
func (cs ColorScheme) BulbColor(i int) RGB {
	if len(cs.Colors) == 0 || i < 0 {
		return RGB{R: 255, G: 255, B: 255}
	}
	c, err := ParseHexColor(cs.Colors[i%len(cs.Colors)])
	if err != nil {
		return RGB{R: 255, G: 255, B: 255}
	}
	return c
}
