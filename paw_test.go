package pawprint

import (
	"image"
	"math"
	"testing"
)

// boundingRadius returns the largest distance from the canvas center to
// any pixel with non-zero alpha.
func boundingRadius(img *image.RGBA) float64 {
	c := float64(img.Rect.Dx()) / 2
	maxD := 0.0
	for y := 0; y < img.Rect.Dy(); y++ {
		for x := 0; x < img.Rect.Dx(); x++ {
			if img.RGBAAt(x, y).A == 0 {
				continue
			}
			maxD = math.Max(maxD, math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c))
		}
	}
	return maxD
}

func TestNewPawGeometry(t *testing.T) {
	tests := []struct {
		name        string
		size        int
		pad         float64
		wantR       float64
		wantOutline float64
	}{
		{"master", 1024, PadStandard, 1024 * (0.20 - 0.12*0.12), 28},
		{"maskable master", 1024, PadMaskable, 1024 * (0.20 - 0.22*0.12), 28},
		{"tiny keeps visible outline", 16, PadStandard, 16 * (0.20 - 0.12*0.12), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewPawGeometry(tt.size, tt.pad)
			if math.Abs(g.R-tt.wantR) > 1e-9 {
				t.Errorf("R = %v, want %v", g.R, tt.wantR)
			}
			if g.Outline != tt.wantOutline {
				t.Errorf("Outline = %v, want %v", g.Outline, tt.wantOutline)
			}
			if g.CX != float64(tt.size)/2 {
				t.Errorf("CX = %v, want %v", g.CX, float64(tt.size)/2)
			}
		})
	}
}

func TestRenderPawSize(t *testing.T) {
	for _, size := range []int{16, 48, 100} {
		img, err := RenderPaw(size, PadStandard)
		if err != nil {
			t.Fatalf("RenderPaw(%d) = %v", size, err)
		}
		if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
			t.Errorf("RenderPaw(%d) bounds = %v", size, b)
		}
	}
}

func TestRenderPawTransparentCorners(t *testing.T) {
	img, err := RenderPaw(128, PadStandard)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []image.Point{{0, 0}, {127, 0}, {0, 127}, {127, 127}} {
		if a := img.RGBAAt(p.X, p.Y).A; a != 0 {
			t.Errorf("corner %v alpha = %d, want 0", p, a)
		}
	}
	if img.RGBAAt(64, 64+5).A != 255 {
		t.Error("pad center should be opaque")
	}
}

func TestMaskablePawIsInset(t *testing.T) {
	standard, err := RenderPaw(256, PadStandard)
	if err != nil {
		t.Fatal(err)
	}
	maskable, err := RenderPaw(256, PadMaskable)
	if err != nil {
		t.Fatal(err)
	}

	rs, rm := boundingRadius(standard), boundingRadius(maskable)
	if rs == 0 {
		t.Fatal("standard mark is empty")
	}
	if rm >= rs {
		t.Errorf("maskable bounding radius %v, want strictly below standard %v", rm, rs)
	}
}

func TestDrawPaw(t *testing.T) {
	dst := RadialGradient(64, Cream, Primary)
	before := dst.RGBAAt(32, 34)

	if err := DrawPaw(dst, PadStandard); err != nil {
		t.Fatalf("DrawPaw() = %v", err)
	}
	if dst.RGBAAt(32, 34) == before {
		t.Error("DrawPaw left the pad area unchanged")
	}
	if dst.RGBAAt(0, 0) != RadialGradient(64, Cream, Primary).RGBAAt(0, 0) {
		t.Error("DrawPaw touched the corner")
	}
}

func TestPawPadBorder(t *testing.T) {
	const size = 256
	img, err := RenderPaw(size, PadStandard)
	if err != nil {
		t.Fatalf("RenderPaw() = %v", err)
	}
	g := NewPawGeometry(size, PadStandard)
	x := int(g.CX)

	tests := []struct {
		name string
		y    int
		want Color
	}{
		{"inset fill", int(g.CY + g.PadRY*0.6), Secondary},
		{"rim", int(g.CY+g.PadRY) - 2, Dark},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := img.RGBAAt(x, tt.y)
			if got.A != 255 || absDiff(got.R, tt.want.R) > 1 || absDiff(got.G, tt.want.G) > 1 || absDiff(got.B, tt.want.B) > 1 {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, tt.y, got, tt.want)
			}
		})
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
