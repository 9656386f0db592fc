package pawprint

import (
	"image"

	"github.com/gogpu/pawprint/internal/filter"
	"golang.org/x/image/draw"
)

// Layer is a decorative canvas composited onto a base.
type Layer struct {
	// Image must have the same bounds as the base.
	Image *image.RGBA

	// Blur is the Gaussian radius applied before compositing.
	// Zero composites the layer as is.
	Blur float64
}

// Composite blurs each layer and draws it onto base with Porter-Duff
// "over", in the order given. Layers are not modified.
//
// Per channel, out = layer + base*(1-layerAlpha) on premultiplied values,
// which accumulates alpha when the base itself is translucent.
func Composite(base *image.RGBA, layers ...Layer) {
	for _, l := range layers {
		src := l.Image
		if l.Blur > 0 {
			src = filter.Blur(src, l.Blur)
		}
		draw.Draw(base, base.Rect, src, src.Rect.Min, draw.Over)
	}
}
