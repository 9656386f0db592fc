// Package export writes rendered canvases to disk in the formats the
// packaging toolchains expect.
//
// Icons are downsampled from a master canvas with a Lanczos-3 filter and
// written as PNG. Animations are palette-reduced and written as looping
// GIF. Parent directories are created on demand. Every write encodes into
// memory first and hits the filesystem with a single call.
package export
