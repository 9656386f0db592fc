package pawprint

import (
	"image"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// A shape is one primitive of the artwork. Shapes are transient: built
// from proportional geometry, drawn once and dropped.
type shape interface {
	draw(dc *gg.Context) error
}

// ellipse is an axis-aligned ellipse. The outline, when width > 0, is
// drawn inside the ellipse bounds.
type ellipse struct {
	cx, cy, rx, ry float64
	fill           Color
	outline        Color
	width          float64
}

func (e ellipse) draw(dc *gg.Context) error {
	if e.fill.A > 0 {
		setColor(dc, e.fill)
		dc.DrawEllipse(e.cx, e.cy, e.rx, e.ry)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	if e.width <= 0 {
		return nil
	}
	half := e.width / 2
	setColor(dc, e.outline)
	dc.SetLineWidth(e.width)
	dc.DrawEllipse(e.cx, e.cy, math.Max(e.rx-half, 0), math.Max(e.ry-half, 0))
	return dc.Stroke()
}

// circle builds an ellipse with equal radii.
func circle(cx, cy, r float64, fill, outline Color, width float64) ellipse {
	return ellipse{cx: cx, cy: cy, rx: r, ry: r, fill: fill, outline: outline, width: width}
}

// roundRect is a rounded rectangle spanning [x0,x1] x [y0,y1].
type roundRect struct {
	x0, y0, x1, y1 float64
	radius         float64
	fill           Color
	outline        Color
	width          float64
}

func (r roundRect) draw(dc *gg.Context) error {
	if r.fill.A > 0 {
		setColor(dc, r.fill)
		dc.DrawRoundedRectangle(r.x0, r.y0, r.x1-r.x0, r.y1-r.y0, r.radius)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	if r.width <= 0 {
		return nil
	}
	half := r.width / 2
	setColor(dc, r.outline)
	dc.SetLineWidth(r.width)
	dc.DrawRoundedRectangle(r.x0+half, r.y0+half, r.x1-r.x0-r.width, r.y1-r.y0-r.width, math.Max(r.radius-half, 0))
	return dc.Stroke()
}

// polygon is a closed polygon with a hairline-or-wider outline.
type polygon struct {
	points  []gg.Point
	fill    Color
	outline Color
	width   float64
}

func (p polygon) draw(dc *gg.Context) error {
	trace := func() {
		for i, pt := range p.points {
			if i == 0 {
				dc.MoveTo(pt.X, pt.Y)
			} else {
				dc.LineTo(pt.X, pt.Y)
			}
		}
		dc.ClosePath()
	}

	setColor(dc, p.fill)
	trace()
	if err := dc.Fill(); err != nil {
		return err
	}
	if p.width <= 0 {
		return nil
	}
	setColor(dc, p.outline)
	dc.SetLineWidth(p.width)
	trace()
	return dc.Stroke()
}

// setColor sets straight-alpha color on dc.
func setColor(dc *gg.Context, c Color) {
	dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
}

// render draws shapes in order onto a fresh transparent size x size layer.
func render(size int, background Color, shapes ...shape) (*image.RGBA, error) {
	dc := gg.NewContext(size, size)
	defer func() { _ = dc.Close() }()

	if background.A > 0 {
		dc.ClearWithColor(gg.RGBA2(
			float64(background.R)/255, float64(background.G)/255,
			float64(background.B)/255, float64(background.A)/255))
	}
	for _, s := range shapes {
		if err := s.draw(dc); err != nil {
			return nil, err
		}
	}
	return snapshot(dc)
}

// snapshot copies the context's pixels into a premultiplied canvas.
func snapshot(dc *gg.Context) (*image.RGBA, error) {
	if err := dc.FlushGPU(); err != nil {
		return nil, err
	}
	pm := dc.ResizeTarget()
	dst := image.NewRGBA(image.Rect(0, 0, pm.Width(), pm.Height()))
	draw.Draw(dst, dst.Rect, pm, image.Point{}, draw.Src)
	return dst, nil
}

// polygonPoints pairs up flat x, y coordinates.
func polygonPoints(xy ...float64) []gg.Point {
	pts := make([]gg.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		pts = append(pts, gg.Pt(xy[i], xy[i+1]))
	}
	return pts
}
