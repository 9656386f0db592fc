package pawprint

import "image/color"

// Color is an 8-bit per channel color with straight (non-premultiplied) alpha.
type Color struct {
	R, G, B, A uint8
}

var _ color.Color = Color{}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color with the given alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA returns c as a standard library straight-alpha color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// LerpColor interpolates every channel from c1 toward c2.
// t is clamped to [0, 1] and each channel is truncated toward zero,
// so the result never leaves the range spanned by the inputs.
func LerpColor(c1, c2 Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: lerpChannel(c1.R, c2.R, t),
		G: lerpChannel(c1.G, c2.G, t),
		B: lerpChannel(c1.B, c2.B, t),
		A: lerpChannel(c1.A, c2.A, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	return clampChannel(int(v))
}

// clampChannel restricts v to [0, 255].
func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Palette used by the icon and the animation.
var (
	Cream     = RGB(255, 247, 237)
	Primary   = RGB(249, 115, 22)
	Secondary = RGB(251, 146, 60)
	Dark      = RGB(154, 52, 18)
)
