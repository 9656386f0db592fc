package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/gogpu/pawprint"
)

var pngEncoder = png.Encoder{CompressionLevel: png.BestCompression}

// SavePNG encodes img as PNG and writes it to path, creating missing
// parent directories.
func SavePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := pngEncoder.Encode(&buf, img); err != nil {
		return fmt.Errorf("export: encode PNG %s: %w", path, err)
	}
	return writeFile(path, buf.Bytes())
}

// SaveResized downsamples src to size and writes it to path as PNG.
func SaveResized(src image.Image, path string, size int) error {
	img, err := Resize(src, size)
	if err != nil {
		return fmt.Errorf("export: %s: %w", path, err)
	}
	if err := SavePNG(path, img); err != nil {
		return err
	}
	pawprint.Logger().Debug("icon written", "path", path, "size", size)
	return nil
}

// writeFile flushes data to path in one write after creating its
// directory.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export: create directory: %w", err)
	}
	if err := os.WriteFile(filepath.Clean(path), data, 0o644); err != nil { //nolint:gosec // generated assets are world readable
		return fmt.Errorf("export: write file: %w", err)
	}
	return nil
}
