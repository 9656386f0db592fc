package pawprint

import (
	"bytes"
	"testing"
)

func TestMakeIconSquare(t *testing.T) {
	for _, size := range []int{32, 100} {
		img, err := MakeIcon(size, PadStandard)
		if err != nil {
			t.Fatalf("MakeIcon(%d) = %v", size, err)
		}
		if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
			t.Errorf("MakeIcon(%d) bounds = %v", size, b)
		}
		for i := 3; i < len(img.Pix); i += 4 {
			if img.Pix[i] != 255 {
				t.Fatalf("MakeIcon(%d) pixel %d alpha = %d, want opaque", size, i/4, img.Pix[i])
			}
		}
	}
}

func TestMakeIconVariantsDiffer(t *testing.T) {
	standard, err := MakeIcon(128, PadStandard)
	if err != nil {
		t.Fatal(err)
	}
	maskable, err := MakeIcon(128, PadMaskable)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(standard.Pix, maskable.Pix) {
		t.Error("standard and maskable icons are identical")
	}
}

func TestMakeIconDeterministic(t *testing.T) {
	a, err := MakeIcon(64, PadStandard)
	if err != nil {
		t.Fatal(err)
	}
	b, err := MakeIcon(64, PadStandard)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("MakeIcon is not deterministic")
	}
}

func TestMakeIconVignetteDarkensRing(t *testing.T) {
	size := 200
	icon, err := MakeIcon(size, PadStandard)
	if err != nil {
		t.Fatal(err)
	}
	bg := RadialGradient(size, Cream, Primary)

	// The ring passes through (size/2, 0.05*size + width/2).
	x, y := size/2, 12
	if icon.RGBAAt(x, y).G >= bg.RGBAAt(x, y).G {
		t.Errorf("ring pixel %v not darker than background %v", icon.RGBAAt(x, y), bg.RGBAAt(x, y))
	}
}
