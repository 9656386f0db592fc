// Package pawprint procedurally draws the paw print app icon and the tail
// wag sprite.
//
// # Overview
//
// Artwork is built from a handful of primitives (circles, rounded
// rectangles, polygons) whose geometry is proportional to the canvas size,
// so the same code renders a 16 px favicon and a 1024 px store icon with
// identical proportions. Shapes are rasterized with the gg vector context;
// soft decorations are blurred and composited over the base.
//
//	icon, err := pawprint.MakeIcon(pawprint.MasterSize, pawprint.PadStandard)
//	frames, err := pawprint.WagFrames(pawprint.WagFrameCount, pawprint.WagSize)
//
// # Canvases
//
// Every canvas is a square *image.RGBA (premultiplied alpha). Colors are
// described with [Color], which carries straight alpha.
//
// # Export
//
// Resizing, PNG and GIF encoding live in the export package; the platform
// size tables live in the manifest package.
package pawprint
