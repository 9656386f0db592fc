package pawprint

import (
	"image"
	"image/color"
	"math"
)

// RadialGradient returns a size x size canvas blending from inner at the
// center to outer at the corners.
//
// The blend factor is the pixel's distance from the center normalized by
// the center-to-corner distance and clamped to [0, 1]; channels follow
// LerpColor.
func RadialGradient(size int, inner, outer Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	c := float64(size-1) / 2
	maxD := math.Hypot(c, c)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			t := 0.0
			if maxD > 0 {
				t = math.Hypot(float64(x)-c, float64(y)-c) / maxD
			}
			img.SetRGBA(x, y, premultiply(LerpColor(inner, outer, t)))
		}
	}
	return img
}

// premultiply converts c to the premultiplied form stored by image.RGBA.
func premultiply(c Color) color.RGBA {
	if c.A == 255 {
		return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
	}
	return color.RGBAModel.Convert(c.NRGBA()).(color.RGBA)
}
