package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"io"
	"time"

	"github.com/gogpu/pawprint"
	"github.com/gogpu/pawprint/internal/palette"
)

// AnimationOptions controls GIF encoding.
type AnimationOptions struct {
	// Delay is the display time of every frame. GIF stores it in
	// hundredths of a second.
	Delay time.Duration

	// MaxColors caps each frame's adaptive palette. Zero means 256.
	MaxColors int
}

// EncodeGIF writes frames as an infinitely looping GIF. Each frame gets
// its own adaptive palette and is disposed to background before the next.
func EncodeGIF(w io.Writer, frames []*image.RGBA, opts AnimationOptions) error {
	if len(frames) == 0 {
		return errors.New("export: encode GIF: no frames")
	}
	maxColors := opts.MaxColors
	if maxColors <= 0 {
		maxColors = 256
	}
	delay := int(opts.Delay / (10 * time.Millisecond))

	anim := &gif.GIF{LoopCount: 0}
	for _, f := range frames {
		anim.Image = append(anim.Image, palette.Reduce(f, maxColors))
		anim.Delay = append(anim.Delay, delay)
		anim.Disposal = append(anim.Disposal, gif.DisposalBackground)
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("export: encode GIF: %w", err)
	}
	return nil
}

// SaveGIF encodes frames with EncodeGIF and writes them to path.
func SaveGIF(path string, frames []*image.RGBA, opts AnimationOptions) error {
	var buf bytes.Buffer
	if err := EncodeGIF(&buf, frames, opts); err != nil {
		return err
	}
	if err := writeFile(path, buf.Bytes()); err != nil {
		return err
	}
	pawprint.Logger().Info("animation written", "path", path, "frames", len(frames))
	return nil
}
