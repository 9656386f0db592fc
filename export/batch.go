package export

import (
	"context"
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/pawprint"
	"github.com/gogpu/pawprint/manifest"
)

// ErrUnknownMaster is returned when an entry names a master canvas that
// was not supplied.
var ErrUnknownMaster = errors.New("export: unknown master")

// Options controls a batch export.
type Options struct {
	// Workers bounds concurrent entries. Values below 1 mean 1.
	Workers int
}

// Run writes every entry under root, resizing from the named master.
// Masters are only read. The first failure stops scheduling new entries
// and is returned; files already written stay on disk.
func Run(ctx context.Context, root string, masters map[string]image.Image, entries []manifest.Entry, opts Options) error {
	for _, e := range entries {
		if _, ok := masters[e.Master]; !ok {
			return fmt.Errorf("%w: %q for %s", ErrUnknownMaster, e.Master, e.Path)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, opts.Workers))

	for _, e := range entries {
		src := masters[e.Master]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return SaveResized(src, filepath.Join(root, filepath.FromSlash(e.Path)), e.Size)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	pawprint.Logger().Info("export finished", "root", root, "files", len(entries))
	return nil
}
