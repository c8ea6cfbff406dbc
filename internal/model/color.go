package model

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGB triple.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Black is used for outlines and text.
var Black = Color{}

// White is the canvas background.
var White = Color{R: 255, G: 255, B: 255}

// RGB builds a Color from components already known to be in range.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Lerp interpolates each channel linearly from c towards to.
// t is clamped to [0, 1] and the result is truncated toward zero.
func (c Color) Lerp(to Color, t float64) Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return Color{R: mix(c.R, to.R), G: mix(c.G, to.G), B: mix(c.B, to.B)}
}

// Colorful converts c for use with go-colorful.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Hex returns the "#rrggbb" form of c.
func (c Color) Hex() string {
	return c.Colorful().Hex()
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

func (c Color) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

// ParseHex parses a "#rrggbb" string.
func ParseHex(s string) (Color, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// Palette is an ordered table of fallback colours.
type Palette []Color

// At returns the entry for index, cycling so the palette never runs out.
func (p Palette) At(index int) Color {
	if len(p) == 0 {
		return Black
	}
	i := index % len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

// DefaultPalette returns the 22 built-in bar colours.
func DefaultPalette() Palette {
	return Palette{
		{230, 25, 75}, {60, 180, 75}, {255, 225, 25}, {0, 130, 200},
		{245, 130, 48}, {145, 30, 180}, {70, 240, 240}, {240, 50, 230},
		{210, 245, 60}, {250, 190, 212}, {0, 128, 128}, {220, 190, 255},
		{170, 110, 40}, {255, 250, 200}, {128, 0, 0}, {170, 255, 195},
		{128, 128, 0}, {255, 215, 180}, {0, 0, 128}, {128, 128, 128},
		{255, 255, 255}, {0, 0, 0},
	}
}
