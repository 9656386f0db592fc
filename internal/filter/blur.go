package filter

import (
	"image"
	"sync"
)

// BlurFilter applies a separable Gaussian blur.
// Horizontal and vertical passes run independently, giving
// O(w*h*(rx+ry)) work instead of O(w*h*rx*ry).
type BlurFilter struct {
	// RadiusX is the horizontal standard deviation in pixels.
	RadiusX float64

	// RadiusY is the vertical standard deviation in pixels.
	RadiusY float64
}

// NewBlurFilter creates a blur filter with equal radius in both directions.
func NewBlurFilter(radius float64) *BlurFilter {
	return &BlurFilter{RadiusX: radius, RadiusY: radius}
}

// Apply blurs the bounds region of src into dst.
// Samples outside src are edge-extended. Pixels of dst outside bounds are
// left untouched. src and dst may not be the same image.
func (f *BlurFilter) Apply(src, dst *image.RGBA, bounds image.Rectangle) {
	if src == nil || dst == nil {
		return
	}

	bounds = bounds.Intersect(src.Rect).Intersect(dst.Rect)
	if bounds.Empty() {
		return
	}

	width, height := bounds.Dx(), bounds.Dy()
	temp := getTempBuffer(width, height)
	defer putTempBuffer(temp)

	blurHorizontal(src, temp, bounds, CachedGaussianKernel(f.RadiusX))
	blurVertical(temp, dst, bounds, CachedGaussianKernel(f.RadiusY))
}

// ExpandBounds returns the region a blur of input can reach.
func (f *BlurFilter) ExpandBounds(input image.Rectangle) image.Rectangle {
	if input.Empty() {
		return input
	}
	ex := len(CachedGaussianKernel(f.RadiusX)) / 2
	ey := len(CachedGaussianKernel(f.RadiusY)) / 2
	return image.Rect(input.Min.X-ex, input.Min.Y-ey, input.Max.X+ex, input.Max.Y+ey)
}

// Blur returns a blurred copy of src. Only the area reachable from
// non-transparent pixels is convolved.
func Blur(src *image.RGBA, radius float64) *image.RGBA {
	dst := image.NewRGBA(src.Rect)
	if radius <= 0 {
		copy(dst.Pix, src.Pix)
		return dst
	}
	f := NewBlurFilter(radius)
	f.Apply(src, dst, f.ExpandBounds(OpaqueBounds(src)))
	return dst
}

// OpaqueBounds returns the smallest rectangle containing every pixel of
// img with non-zero alpha.
func OpaqueBounds(img *image.RGBA) image.Rectangle {
	b := img.Rect
	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X, b.Min.Y
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			if row[x*4+3] == 0 {
				continue
			}
			px := b.Min.X + x
			minX = min(minX, px)
			maxX = max(maxX, px+1)
			minY = min(minY, y)
			maxY = max(maxY, y+1)
		}
	}
	if minX >= maxX {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX, maxY)
}

// blurHorizontal convolves each row of src within bounds into temp.
func blurHorizontal(src *image.RGBA, temp []float32, bounds image.Rectangle, kernel []float32) {
	half := len(kernel) / 2
	minX, maxX := src.Rect.Min.X, src.Rect.Max.X-1
	width := bounds.Dx()

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			var r, g, b, a float32
			for k, w := range kernel {
				kx := min(max(x+k-half, minX), maxX)
				i := src.PixOffset(kx, y)
				r += float32(src.Pix[i+0]) * w
				g += float32(src.Pix[i+1]) * w
				b += float32(src.Pix[i+2]) * w
				a += float32(src.Pix[i+3]) * w
			}

			t := ((y-bounds.Min.Y)*width + (x - bounds.Min.X)) * 4
			temp[t+0] = r
			temp[t+1] = g
			temp[t+2] = b
			temp[t+3] = a
		}
	}
}

// blurVertical convolves each column of temp into dst.
// Rows beyond bounds are edge-extended from the row pass.
func blurVertical(temp []float32, dst *image.RGBA, bounds image.Rectangle, kernel []float32) {
	half := len(kernel) / 2
	width, height := bounds.Dx(), bounds.Dy()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var r, g, b, a float32
			for k, w := range kernel {
				ky := min(max(y+k-half, 0), height-1)
				t := (ky*width + x) * 4
				r += temp[t+0] * w
				g += temp[t+1] * w
				b += temp[t+2] * w
				a += temp[t+3] * w
			}

			// Premultiplied color can never exceed alpha.
			alpha := clampUint8(a)
			i := dst.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
			dst.Pix[i+0] = min(clampUint8(r), alpha)
			dst.Pix[i+1] = min(clampUint8(g), alpha)
			dst.Pix[i+2] = min(clampUint8(b), alpha)
			dst.Pix[i+3] = alpha
		}
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

var tempBufferPool = sync.Pool{
	New: func() any {
		return &floatBuffer{}
	},
}

// getTempBuffer returns a buffer of exactly width*height*4 elements.
func getTempBuffer(width, height int) []float32 {
	size := width * height * 4
	wrapper := tempBufferPool.Get().(*floatBuffer)
	if cap(wrapper.data) < size {
		return make([]float32, size)
	}
	return wrapper.data[:size]
}

// putTempBuffer returns a buffer to the pool. Buffers larger than a
// 1024x1024 master are dropped.
func putTempBuffer(buf []float32) {
	if cap(buf) <= 1024*1024*4 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

// clampUint8 clamps v to [0, 255] and rounds to nearest.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
