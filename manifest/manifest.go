// Package manifest declares which icon files each packaging platform
// expects and at what pixel size.
//
// The tables are static data in an embedded HCL document; see icons.hcl.
package manifest

import (
	_ "embed"
	"errors"
	"fmt"
	"path"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

//go:embed icons.hcl
var iconsHCL []byte

// DefaultMaster names the master canvas used when an icon does not pick one.
const DefaultMaster = "base"

// Manifest errors.
var (
	// ErrNoEntries is returned when a manifest declares no icons.
	ErrNoEntries = errors.New("manifest: no icon entries")

	// ErrInvalid is returned when a manifest is internally inconsistent.
	ErrInvalid = errors.New("manifest: invalid")
)

// Manifest is the decoded export manifest.
type Manifest struct {
	MasterSize int       `hcl:"master_size"`
	Masters    []*Master `hcl:"master,block"`
	Targets    []*Target `hcl:"target,block"`
}

// Master describes one master canvas.
type Master struct {
	Name string  `hcl:"name,label"`
	Pad  float64 `hcl:"pad"`
}

// Target groups the icons of one platform under a common directory.
type Target struct {
	Name  string  `hcl:"name,label"`
	Dir   string  `hcl:"dir"`
	Icons []*Icon `hcl:"icon,block"`
}

// Icon is a single file within a target.
type Icon struct {
	Path   string `hcl:"path,label"`
	Size   int    `hcl:"size"`
	Master string `hcl:"master,optional"`
}

// Entry is one resize-and-write operation: the file at Path (relative to
// the output root, slash separated) gets the Master canvas at Size pixels.
type Entry struct {
	Target string
	Path   string
	Size   int
	Master string
}

// Default returns the built-in manifest.
func Default() (*Manifest, error) {
	return Parse("icons.hcl", iconsHCL)
}

// Parse decodes and validates an HCL manifest. filename is used in
// diagnostics and must end in .hcl.
func Parse(filename string, src []byte) (*Manifest, error) {
	var m Manifest
	if err := hclsimple.Decode(filename, src, nil, &m); err != nil {
		return nil, fmt.Errorf("manifest: decode %s: %w", filename, err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if m.MasterSize <= 0 {
		return fmt.Errorf("%w: master_size %d", ErrInvalid, m.MasterSize)
	}

	masters := make(map[string]bool, len(m.Masters))
	for _, ms := range m.Masters {
		if masters[ms.Name] {
			return fmt.Errorf("%w: duplicate master %q", ErrInvalid, ms.Name)
		}
		masters[ms.Name] = true
	}

	seen := make(map[string]bool)
	for _, e := range m.Entries() {
		if !masters[e.Master] {
			return fmt.Errorf("%w: %s references unknown master %q", ErrInvalid, e.Path, e.Master)
		}
		if e.Size > m.MasterSize {
			return fmt.Errorf("%w: %s size %d exceeds master_size %d", ErrInvalid, e.Path, e.Size, m.MasterSize)
		}
		if seen[e.Path] {
			return fmt.Errorf("%w: duplicate path %s", ErrInvalid, e.Path)
		}
		seen[e.Path] = true
	}
	if len(seen) == 0 {
		return ErrNoEntries
	}
	return nil
}

// Entries flattens every target into independent export entries, in
// declaration order.
func (m *Manifest) Entries() []Entry {
	var entries []Entry
	for _, t := range m.Targets {
		entries = append(entries, t.Entries()...)
	}
	return entries
}

// Entries returns the target's icons as export entries.
func (t *Target) Entries() []Entry {
	entries := make([]Entry, 0, len(t.Icons))
	for _, ic := range t.Icons {
		master := ic.Master
		if master == "" {
			master = DefaultMaster
		}
		entries = append(entries, Entry{
			Target: t.Name,
			Path:   path.Join(t.Dir, ic.Path),
			Size:   ic.Size,
			Master: master,
		})
	}
	return entries
}

// Target returns the target with the given name.
func (m *Manifest) Target(name string) (*Target, bool) {
	for _, t := range m.Targets {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// Pad returns the padding of the named master.
func (m *Manifest) Pad(master string) (float64, bool) {
	for _, ms := range m.Masters {
		if ms.Name == master {
			return ms.Pad, true
		}
	}
	return 0, false
}
