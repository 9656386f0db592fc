package pawprint

import (
	"image"
	"math"
)

// MasterSize is the resolution of the master canvases. It is the largest
// size any export target asks for, so exports only ever downsample.
const MasterSize = 1024

// MakeIcon renders the complete app icon at size x size: the radial
// background, a soft vignette ring and the paw mark inset by pad.
func MakeIcon(size int, pad float64) (*image.RGBA, error) {
	base := RadialGradient(size, Cream, Primary)

	vignette, err := render(size, Color{}, vignetteRing(size))
	if err != nil {
		return nil, err
	}
	mark, err := RenderPaw(size, pad)
	if err != nil {
		return nil, err
	}

	Composite(base,
		Layer{Image: vignette, Blur: float64(size) * 0.01},
		Layer{Image: mark},
	)

	Logger().Info("icon rendered", "size", size, "pad", pad)
	return base, nil
}

// vignetteRing is a translucent dark ring just inside the canvas edge.
func vignetteRing(size int) shape {
	s := float64(size)
	return ellipse{
		cx: s / 2, cy: s / 2,
		rx: s * 0.45, ry: s * 0.45,
		outline: Dark.WithAlpha(80),
		width:   math.Max(2, math.Trunc(s*0.02)),
	}
}
