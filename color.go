package main

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// === COLOR ===

// Color represents an RGB color value for terminal output.
type Color struct{ R, G, B uint8 }

// Hex returns the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// colorfulOf converts c for blending.
func colorfulOf(c Color) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// blend mixes from and to in RGB space; t=0 gives from, t=1 gives to.
func blend(from, to Color, t float64) Color {
	t = clamp(t, 0, 1)
	r, g, b := colorfulOf(from).BlendRgb(colorfulOf(to), t).Clamped().RGB255()
	return Color{r, g, b}
}

// Palette holds the colors and intensities the compositor paints with.
type Palette struct {
	Head  Color // Leading glyph
	Trail Color // Trail cell next to the head
	Floor Color // Darkest trail cell

	TrailIntensity float64 // Intensity of the first trail cell
	FloorIntensity float64 // Intensity of the last trail cell

	Glitch Color

	OverlayBright Color
	OverlayMedium Color
	OverlayDim    Color
}

// DefaultPalette returns the classic green-on-black palette.
func DefaultPalette() Palette {
	return Palette{
		Head:           Color{220, 255, 220},
		Trail:          Color{0, 255, 65},
		Floor:          Color{0, 70, 10},
		TrailIntensity: 0.9,
		FloorIntensity: 0.25,
		Glitch:         Color{255, 255, 255},
		OverlayBright:  Color{180, 255, 180},
		OverlayMedium:  Color{80, 180, 80},
		OverlayDim:     Color{30, 90, 30},
	}
}

// trailShade returns the color and intensity of the trail cell at distance
// from the head, for a trail of the given length. Both fall monotonically
// from Trail at distance 1 to Floor at distance length.
func (p Palette) trailShade(distance, length int) (Color, float64) {
	t := 0.0
	if length > 1 {
		t = float64(distance-1) / float64(length-1)
	}
	t = clamp(t, 0, 1)
	intensity := p.TrailIntensity - t*(p.TrailIntensity-p.FloorIntensity)
	return blend(p.Trail, p.Floor, t), intensity
}

// overlayColor returns the overlay text color for a fade stage.
func (p Palette) overlayColor(stage FadeStage) (Color, float64) {
	switch stage {
	case FadeBright:
		return p.OverlayBright, 1
	case FadeMedium:
		return p.OverlayMedium, 0.6
	default:
		return p.OverlayDim, 0.3
	}
}

// clamp limits val to [lo, hi].
func clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
