package colors

import "fmt"

// Color is linear RGBA in [0..1], not premultiplied.
type Color [4]float32

var (
	Transparent = Color{0, 0, 0, 0}
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Gray        = Color{0.5, 0.5, 0.5, 1}
	DarkGray    = Color{0.08, 0.10, 0.12, 1}
	Accent      = Color{0.18, 0.55, 0.85, 1}
)

func (c Color) R() float32 { return c[0] }
func (c Color) G() float32 { return c[1] }
func (c Color) B() float32 { return c[2] }
func (c Color) A() float32 { return c[3] }

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Scale multiplies the RGB channels by f, leaving alpha untouched.
func (c Color) Scale(f float32) Color {
	for i := 0; i < 3; i++ {
		c[i] = clamp01(c[i] * f)
	}
	return c
}

// Premultiplied returns the colour with RGB multiplied by alpha, which is
// what the painter's blend function expects in vertex colours.
func (c Color) Premultiplied() Color {
	return Color{c[0] * c[3], c[1] * c[3], c[2] * c[3], c[3]}
}

// RGBA8 packs the colour into 8-bit channels.
func (c Color) RGBA8() [4]uint8 {
	var out [4]uint8
	for i := range c {
		out[i] = uint8(clamp01(c[i])*255 + 0.5)
	}
	return out
}

// FromRGBA8 builds a colour from 8-bit channels.
func FromRGBA8(r, g, b, a uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

// ParseHex accepts "#rrggbb" or "#rrggbbaa".
func ParseHex(s string) (Color, error) {
	var r, g, b, a uint8 = 0, 0, 0, 255
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return Color{}, fmt.Errorf("parse colour %q: %w", s, err)
		}
	case 9:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return Color{}, fmt.Errorf("parse colour %q: %w", s, err)
		}
	default:
		return Color{}, fmt.Errorf("parse colour %q: want #rrggbb or #rrggbbaa", s)
	}
	return FromRGBA8(r, g, b, a), nil
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
