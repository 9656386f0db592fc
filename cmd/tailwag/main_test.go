package main

import (
	"bytes"
	"image/gif"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/pawprint"
)

func TestRun(t *testing.T) {
	root := t.TempDir()
	t.Setenv("PAWPRINT_ROOT", root)
	t.Cleanup(func() { pawprint.SetLogger(nil) })

	var stdout bytes.Buffer
	if err := run(&stdout); err != nil {
		t.Fatalf("run() = %v", err)
	}

	want := filepath.Join(root, "assets", "gifs", "dog_wag_128.gif")
	if got := strings.TrimSpace(stdout.String()); got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}

	f, err := os.Open(want)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	anim, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("DecodeAll() = %v", err)
	}
	if len(anim.Image) != 16 {
		t.Fatalf("frames = %d, want 16", len(anim.Image))
	}
	if anim.LoopCount != 0 {
		t.Errorf("LoopCount = %d, want 0 (forever)", anim.LoopCount)
	}
	for i, img := range anim.Image {
		if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 128 {
			t.Errorf("frame %d bounds = %v, want 128x128", i, b)
		}
		if anim.Delay[i] != 6 {
			t.Errorf("frame %d delay = %d0 ms, want 60 ms", i, anim.Delay[i])
		}
		if anim.Disposal[i] != gif.DisposalBackground {
			t.Errorf("frame %d disposal = %d, want background", i, anim.Disposal[i])
		}
	}
}
