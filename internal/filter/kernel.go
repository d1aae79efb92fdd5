package filter

import (
	"math"
	"sync"
)

// Truncate is the number of standard deviations covered by a Gaussian kernel.
const Truncate = 4.0

// KernelRadius returns the half-width of the Gaussian kernel for sigma.
// The radius is int(Truncate*sigma + 0.5); sigma <= 0 has radius 0.
func KernelRadius(sigma float64) int {
	if sigma <= 0 {
		return 0
	}
	return int(Truncate*sigma + 0.5)
}

// GaussianKernel generates a 1D Gaussian kernel for the given sigma.
// The kernel is normalized so all values sum to 1.0 and has
// 2*KernelRadius(sigma)+1 taps.
//
// For sigma <= 0, returns a single-element kernel [1.0] (identity).
func GaussianKernel(sigma float64) []float64 {
	radius := KernelRadius(sigma)
	if radius == 0 {
		return []float64{1.0}
	}

	size := radius*2 + 1
	kernel := make([]float64, size)

	// G(x) = exp(-x²/(2σ²)); the constant factor cancels on normalization.
	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0

	for i := range size {
		x := float64(i - radius)
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = val
		sum += val
	}

	invSum := 1.0 / sum
	for i := range kernel {
		kernel[i] *= invSum
	}

	return kernel
}

// kernelCache caches computed Gaussian kernels to avoid recomputation.
// Key is sigma * 100 (to handle float precision), value is kernel.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[int][]float64
	maxLen int
}

var defaultKernelCache = newKernelCache(32)

// newKernelCache creates a kernel cache with the given maximum entries.
func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{
		cache:  make(map[int][]float64),
		maxLen: maxLen,
	}
}

// get retrieves a kernel from cache or generates and caches it.
func (c *kernelCache) get(sigma float64) []float64 {
	key := int(math.Round(sigma * 100))

	c.mu.RLock()
	if kernel, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return kernel
	}
	c.mu.RUnlock()

	kernel := GaussianKernel(sigma)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		// Simple eviction: clear half the cache.
		count := 0
		for k := range c.cache {
			delete(c.cache, k)
			count++
			if count >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[key] = kernel
	c.mu.Unlock()

	return kernel
}

// CachedGaussianKernel returns a cached Gaussian kernel for sigma.
// The returned slice is shared and must not be modified.
func CachedGaussianKernel(sigma float64) []float64 {
	return defaultKernelCache.get(sigma)
}
