package pawprint

import (
	"image"
	"math"
)

// Standard padding values for the paw mark.
const (
	PadStandard = 0.12
	PadMaskable = 0.22
)

// PawGeometry holds the paw mark proportions for one canvas size.
// Every length derives from the canvas size, so the mark keeps its shape
// at any resolution.
type PawGeometry struct {
	Size    float64
	CX, CY  float64
	R       float64 // base unit; pad increases shrink it
	ToeR    float64
	PadRX   float64
	PadRY   float64
	Outline float64
}

// NewPawGeometry computes the mark geometry for a size x size canvas.
// Larger pad values shrink the mark, leaving a wider safe margin.
func NewPawGeometry(size int, pad float64) PawGeometry {
	s := float64(size)
	r := s * (0.20 - pad*0.12)
	return PawGeometry{
		Size:    s,
		CX:      s / 2,
		CY:      s/2 + s*0.04,
		R:       r,
		ToeR:    r * 0.42,
		PadRX:   r * 1.45,
		PadRY:   r * 1.15,
		Outline: math.Max(2, math.Trunc(s*0.028)),
	}
}

func (g PawGeometry) toes() []shape {
	toeY := g.CY - g.R*1.12
	upper := toeY - g.R*0.44
	return []shape{
		circle(g.CX-g.R*1.10, toeY, g.ToeR, Primary, Dark, g.Outline),
		circle(g.CX+g.R*1.10, toeY, g.ToeR, Primary, Dark, g.Outline),
		circle(g.CX-g.R*0.36, upper, g.ToeR, Secondary, Dark, g.Outline),
		circle(g.CX+g.R*0.36, upper, g.ToeR, Secondary, Dark, g.Outline),
	}
}

// pads returns the main pad and the inset that gives it a dark border.
func (g PawGeometry) pads() []shape {
	outer := roundRect{
		x0: g.CX - g.PadRX, y0: g.CY - g.PadRY,
		x1: g.CX + g.PadRX, y1: g.CY + g.PadRY,
		radius: g.PadRY * 0.55,
		fill:   Dark, outline: Dark, width: g.Outline,
	}
	inset := g.Outline * 1.4
	// The inset is lighter than the outer pad so the dark rim reads as a border.
	inner := roundRect{
		x0: outer.x0 + inset, y0: outer.y0 + inset,
		x1: outer.x1 - inset, y1: outer.y1 - inset,
		radius: g.PadRY * 0.52,
		fill:   Secondary,
	}
	return []shape{outer, inner}
}

// shine is the soft highlight across the upper left of the pad.
func (g PawGeometry) shine() shape {
	x0, x1 := g.CX-g.PadRX*0.85, g.CX+g.PadRX*0.55
	y0, y1 := g.CY-g.PadRY*0.75, g.CY-g.PadRY*0.05
	return ellipse{
		cx: (x0 + x1) / 2, cy: (y0 + y1) / 2,
		rx: (x1 - x0) / 2, ry: (y1 - y0) / 2,
		fill: Cream.WithAlpha(140),
	}
}

// ShineBlur is the highlight's blur radius.
func (g PawGeometry) ShineBlur() float64 {
	return g.Size * 0.02
}

// RenderPaw draws the paw mark with its highlight on a transparent
// size x size layer.
func RenderPaw(size int, pad float64) (*image.RGBA, error) {
	g := NewPawGeometry(size, pad)

	mark, err := render(size, Color{}, append(g.toes(), g.pads()...)...)
	if err != nil {
		return nil, err
	}
	shine, err := render(size, Color{}, g.shine())
	if err != nil {
		return nil, err
	}
	Composite(mark, Layer{Image: shine, Blur: g.ShineBlur()})
	return mark, nil
}

// DrawPaw composites the paw mark onto dst, which must be square.
func DrawPaw(dst *image.RGBA, pad float64) error {
	mark, err := RenderPaw(dst.Rect.Dx(), pad)
	if err != nil {
		return err
	}
	Composite(dst, Layer{Image: mark})
	return nil
}
