package preview

import (
	"image/color"

	"github.com/OpenTraceLab/MeanderTrace/pkg/geom"
)

// ColorTheme selects a preview color theme.
type ColorTheme int

const (
	ThemeClassic ColorTheme = iota
	ThemeDark
)

// ThemeNames maps theme enum to display name
var ThemeNames = map[ColorTheme]string{
	ThemeClassic: "Classic",
	ThemeDark:    "Dark",
}

// CurrentTheme is the active color theme (default: Classic)
var CurrentTheme = ThemeClassic

// SetTheme changes the active color theme
func SetTheme(theme ColorTheme) {
	CurrentTheme = theme
}

// Classic theme: white surface, KiCad-like layer colors.
var classicColors = map[string]color.NRGBA{
	geom.LayerFrontCopper: {R: 200, G: 52, B: 52, A: 255},   // Front copper (red)
	geom.LayerBackCopper:  {R: 77, G: 127, B: 196, A: 255},  // Back copper (blue)
	geom.LayerEdgeCuts:    {R: 128, G: 128, B: 128, A: 255}, // Board edge (gray)
}

// Dark theme: dark surface, brighter copper.
var darkColors = map[string]color.NRGBA{
	geom.LayerFrontCopper: {R: 235, G: 98, B: 98, A: 255},
	geom.LayerBackCopper:  {R: 110, G: 168, B: 240, A: 255},
	geom.LayerEdgeCuts:    {R: 160, G: 164, B: 170, A: 255},
}

// GetLayerColor returns the stroke color for a layer name in the current
// theme. Unknown layer names map to a theme fallback (black on Classic) so
// the mapping is total.
func GetLayerColor(layer string) color.NRGBA {
	colors := classicColors
	if CurrentTheme == ThemeDark {
		colors = darkColors
	}
	if c, ok := colors[layer]; ok {
		return c
	}
	if CurrentTheme == ThemeDark {
		return color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	}
	return color.NRGBA{A: 255}
}

// BackgroundColor returns the surface clear color for the current theme.
func BackgroundColor() color.NRGBA {
	if CurrentTheme == ThemeDark {
		return color.NRGBA{R: 18, G: 22, B: 30, A: 255}
	}
	return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
}

// PlaceholderColor returns the color of the "Preview unavailable" text.
func PlaceholderColor() color.NRGBA {
	return color.NRGBA{R: 128, G: 128, B: 128, A: 255}
}
