// Package filter provides the soft-edge filters used by the compositor.
//
// Filters operate on premultiplied *image.RGBA buffers:
//   - Gaussian blur (separable, two 1D passes)
//
// Blurring premultiplied data keeps transparent neighbours from bleeding
// their (undefined) color into the soft edge.
package filter
