// Command appicons renders the paw print icon masters and exports every
// platform icon listed in the built-in manifest.
//
// Output goes under PAWPRINT_ROOT (default: the current directory).
package main

import (
	"context"
	"fmt"
	"image"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/pawprint"
	"github.com/gogpu/pawprint/export"
	"github.com/gogpu/pawprint/internal/config"
	"github.com/gogpu/pawprint/manifest"
)

func main() {
	if err := run(context.Background(), os.Stdout); err != nil {
		log.Fatalf("appicons: %v", err)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	pawprint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})))

	m, err := manifest.Default()
	if err != nil {
		return err
	}

	masters := make(map[string]image.Image, len(m.Masters))
	for _, ms := range m.Masters {
		img, err := pawprint.MakeIcon(m.MasterSize, ms.Pad)
		if err != nil {
			return fmt.Errorf("render master %s: %w", ms.Name, err)
		}
		masters[ms.Name] = img
	}

	if err := export.Run(ctx, cfg.Root, masters, m.Entries(), export.Options{Workers: cfg.Workers}); err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, "done")
	return err
}
