package filter

import (
	"math"
	"sync"
)

// GaussianKernel generates a normalized 1D Gaussian kernel using radius as
// the standard deviation.
//
// The kernel size is 2 * ceil(radius * 3) + 1, which covers 99.7% of the
// distribution. For radius <= 0 it returns the identity kernel [1.0].
func GaussianKernel(radius float64) []float32 {
	if radius <= 0 {
		return []float32{1.0}
	}

	halfSize := int(math.Ceil(radius * 3))
	kernel := make([]float32, halfSize*2+1)

	// exp(-x²/(2σ²)); the constant factor disappears in normalization.
	twoSigmaSq := 2 * radius * radius
	sum := 0.0
	for i := range kernel {
		x := float64(i - halfSize)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}

	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

// KernelHalfWidth returns how many pixels a blur of the given radius
// reaches on each side.
func KernelHalfWidth(radius float64) int {
	if radius <= 0 {
		return 0
	}
	return int(math.Ceil(radius * 3))
}

// kernelCache memoizes kernels by radius quantized to 0.01.
// Icon masters and animation frames reuse a handful of radii.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[int][]float32
	maxLen int
}

var defaultKernelCache = newKernelCache(64)

func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{
		cache:  make(map[int][]float32),
		maxLen: maxLen,
	}
}

func (c *kernelCache) get(radius float64) []float32 {
	key := int(math.Round(radius * 100))

	c.mu.RLock()
	kernel, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return kernel
	}

	// Built from the key, so every radius in a bucket gets the same kernel.
	kernel = GaussianKernel(float64(key) / 100)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		// Drop half the entries.
		n := 0
		for k := range c.cache {
			delete(c.cache, k)
			n++
			if n >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[key] = kernel
	c.mu.Unlock()
	return kernel
}

// CachedGaussianKernel returns a shared kernel for radius.
// Callers must not modify the returned slice.
func CachedGaussianKernel(radius float64) []float32 {
	return defaultKernelCache.get(radius)
}
