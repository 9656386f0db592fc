package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/pawprint"
	"github.com/gogpu/pawprint/manifest"
)

func pngSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = f.Close() }()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return cfg.Width, cfg.Height
}

func TestRun(t *testing.T) {
	if testing.Short() {
		t.Skip("renders 1024 px masters")
	}

	root := t.TempDir()
	t.Setenv("PAWPRINT_ROOT", root)
	t.Setenv("PAWPRINT_WORKERS", "4")
	t.Cleanup(func() { pawprint.SetLogger(nil) })

	var stdout bytes.Buffer
	if err := run(context.Background(), &stdout); err != nil {
		t.Fatalf("run() = %v", err)
	}
	if strings.TrimSpace(stdout.String()) != "done" {
		t.Errorf("stdout = %q, want done", stdout.String())
	}

	m, err := manifest.Default()
	if err != nil {
		t.Fatal(err)
	}
	if m.MasterSize != pawprint.MasterSize {
		t.Errorf("manifest master_size = %d, want %d", m.MasterSize, pawprint.MasterSize)
	}
	for _, e := range m.Entries() {
		w, h := pngSize(t, filepath.Join(root, filepath.FromSlash(e.Path)))
		if w != e.Size || h != e.Size {
			t.Errorf("%s is %dx%d, want %d", e.Path, w, h, e.Size)
		}
	}

	iosDir := filepath.Join(root, "ios", "Runner", "Assets.xcassets", "AppIcon.appiconset")
	files, err := os.ReadDir(iosDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 15 {
		t.Errorf("ios icon set has %d files, want 15", len(files))
	}

	standard, err := os.ReadFile(filepath.Join(root, "web", "icons", "Icon-192.png"))
	if err != nil {
		t.Fatal(err)
	}
	maskable, err := os.ReadFile(filepath.Join(root, "web", "icons", "Icon-maskable-192.png"))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(standard, maskable) {
		t.Error("maskable web icon is identical to the standard one")
	}
}

func TestRunBadConfig(t *testing.T) {
	t.Setenv("PAWPRINT_WORKERS", "zero")
	if err := run(context.Background(), &bytes.Buffer{}); err == nil {
		t.Fatal("expected configuration error")
	}
}
