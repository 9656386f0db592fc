// Command tailwag renders the looping tail wag sprite and prints the path
// it was written to.
package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/pawprint"
	"github.com/gogpu/pawprint/export"
	"github.com/gogpu/pawprint/internal/config"
)

// outputPath is where the app bundle expects the sprite, relative to the
// output root.
const outputPath = "assets/gifs/dog_wag_128.gif"

// maxColors keeps the sprite small; each frame gets its own palette.
const maxColors = 64

func main() {
	if err := run(os.Stdout); err != nil {
		log.Fatalf("tailwag: %v", err)
	}
}

func run(stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	pawprint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})))

	frames, err := pawprint.WagFrames(pawprint.WagFrameCount, pawprint.WagSize)
	if err != nil {
		return err
	}

	path := filepath.Join(cfg.Root, filepath.FromSlash(outputPath))
	opts := export.AnimationOptions{Delay: pawprint.WagDelay, MaxColors: maxColors}
	if err := export.SaveGIF(path, frames, opts); err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, path)
	return err
}
