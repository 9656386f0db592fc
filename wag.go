package pawprint

import (
	"image"
	"math"
	"time"
)

// Tail wag animation parameters.
const (
	WagFrameCount = 16
	WagSize       = 128
	WagDelay      = 60 * time.Millisecond
)

// WagFrame renders frame i of an n-frame tail wag loop at size x size.
// The moving tail is offset by sin(2*pi*i/n), so frame n would equal
// frame 0. Frames share no state and may be rendered in any order.
func WagFrame(i, n, size int) (*image.RGBA, error) {
	t := float64(i) / float64(n)
	s := float64(size)

	cx := size / 2
	cy := size/2 + 4
	r := int(s * 0.18)
	dx := int(math.Sin(t*2*math.Pi) * s * 0.03)

	tailW := int(s * 0.10)
	tailH := int(s * 0.04)
	tailX := cx + r - int(s*0.02)
	tailY := cy + int(float64(r)*0.1)
	tailOutline := float64(max(2, size/36))

	scaled := func(v int, k float64) int { return v + int(float64(r)*k) }
	eyeR := float64(max(2, size/48))
	noseR := float64(max(2, size/44))

	shapes := []shape{
		circle(float64(cx), float64(cy), float64(r), Primary, Dark, float64(max(2, size/32))),
		polygon{
			points: polygonPoints(
				float64(scaled(cx, -0.9)), float64(scaled(cy, -0.7)),
				float64(scaled(cx, -1.2)), float64(scaled(cy, -1.4)),
				float64(scaled(cx, -0.3)), float64(scaled(cy, -1.1)),
			),
			fill: Secondary, outline: Dark, width: 1,
		},
		tail(tailX, tailY, tailW, tailH, Secondary, tailOutline),
		tail(tailX+dx, tailY-floorHalf(dx), tailW, tailH, Primary, tailOutline),
		circle(float64(scaled(cx, -0.35)), float64(scaled(cy, -0.2)), eyeR, Dark, Dark, 0),
		circle(float64(scaled(cx, 0.10)), float64(scaled(cy, -0.2)), eyeR, Dark, Dark, 0),
		circle(float64(scaled(cx, 0.02)), float64(scaled(cy, 0.10)), noseR, Dark, Dark, 0),
	}

	img, err := render(size, Cream, shapes...)
	if err != nil {
		return nil, err
	}
	Logger().Debug("wag frame rendered", "frame", i, "of", n, "size", size, "offset", dx)
	return img, nil
}

func tail(x, y, w, h int, fill Color, outline float64) roundRect {
	return roundRect{
		x0: float64(x), y0: float64(y),
		x1: float64(x + w), y1: float64(y + h),
		radius: float64(h / 2),
		fill:   fill, outline: Dark, width: outline,
	}
}

// WagFrames renders the full n-frame loop in order.
func WagFrames(n, size int) ([]*image.RGBA, error) {
	frames := make([]*image.RGBA, 0, n)
	for i := range n {
		f, err := WagFrame(i, n, size)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// floorHalf returns v/2 rounded toward negative infinity.
func floorHalf(v int) int {
	return int(math.Floor(float64(v) / 2))
}
