package export

import (
	"errors"
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
)

// ErrUpscale is returned when a target size exceeds the source canvas.
var ErrUpscale = errors.New("export: target larger than source")

// Lanczos3 is a windowed-sinc kernel with three lobes. When shrinking,
// x/image/draw widens its support by the scale factor, so every source
// pixel contributes to the output.
var Lanczos3 = &draw.Kernel{Support: 3, At: lanczos3}

func lanczos3(t float64) float64 {
	t = math.Abs(t)
	if t >= 3 {
		return 0
	}
	if t < 1e-9 {
		return 1
	}
	pt := math.Pi * t
	return 3 * math.Sin(pt) * math.Sin(pt/3) / (pt * pt)
}

// Resize returns a size x size downsample of src.
// A size equal to the source returns an unfiltered copy.
func Resize(src image.Image, size int) (*image.RGBA, error) {
	sb := src.Bounds()
	if size > sb.Dx() || size > sb.Dy() {
		return nil, fmt.Errorf("%w: %d > %dx%d", ErrUpscale, size, sb.Dx(), sb.Dy())
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	if size == sb.Dx() && size == sb.Dy() {
		draw.Copy(dst, image.Point{}, src, sb, draw.Src, nil)
		return dst, nil
	}
	Lanczos3.Scale(dst, dst.Rect, src, sb, draw.Src, nil)
	return dst, nil
}
