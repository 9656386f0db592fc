// Package palette reduces truecolor frames to small adaptive palettes.
package palette

import (
	"image"
	"image/color"

	"github.com/soniakeys/quant/median"
	"golang.org/x/image/draw"
)

var _ draw.Quantizer = median.Quantizer(0)

// Reduce maps img onto an adaptive median-cut palette of at most
// maxColors colors using nearest-color matching, without dithering.
// maxColors outside [1, 256] is treated as 256.
func Reduce(img image.Image, maxColors int) *image.Paletted {
	if maxColors < 1 || maxColors > 256 {
		maxColors = 256
	}
	pal := median.Quantizer(maxColors).Quantize(make(color.Palette, 0, maxColors), img)

	b := img.Bounds()
	dst := image.NewPaletted(b, pal)
	draw.Draw(dst, b, img, b.Min, draw.Src)
	return dst
}
