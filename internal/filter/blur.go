package filter

import (
	"github.com/gogpu/glyphset/internal/image"
)

// GaussianFilter applies a separable Gaussian blur to a field.
// Samples outside the field are read as CVal.
type GaussianFilter struct {
	// Sigma is the standard deviation in pixels. Values <= 0 disable blurring.
	Sigma float64

	// CVal is the constant used for samples beyond the field edge.
	CVal float64
}

// NewGaussianFilter creates a Gaussian filter with zero boundary fill.
func NewGaussianFilter(sigma float64) *GaussianFilter {
	return &GaussianFilter{Sigma: sigma}
}

// Apply blurs src and returns a new field of the same shape.
// The two passes are:
//  1. Horizontal pass: convolve each row with the 1D kernel
//  2. Vertical pass: convolve each column with the 1D kernel
func (f *GaussianFilter) Apply(src *image.Field) *image.Field {
	if f.Sigma <= 0 {
		return src.Clone()
	}

	kernel := CachedGaussianKernel(f.Sigma)
	w, h := src.Bounds()

	temp := make([]float64, w*h)
	convolveRows(src.Data(), temp, w, h, kernel, f.CVal)

	out := make([]float64, w*h)
	convolveColumns(temp, out, w, h, kernel, f.CVal)

	dst, _ := image.FromValues(out, w, h)
	return dst
}

// Blur is shorthand for NewGaussianFilter(sigma).Apply(src).
func Blur(src *image.Field, sigma float64) *image.Field {
	return NewGaussianFilter(sigma).Apply(src)
}

// convolveRows applies the kernel along x. Reads src, writes dst.
func convolveRows(src, dst []float64, w, h int, kernel []float64, cval float64) {
	half := len(kernel) / 2

	for y := range h {
		row := src[y*w : (y+1)*w]
		for x := range w {
			var acc float64
			for k, weight := range kernel {
				kx := x + k - half
				if kx < 0 || kx >= w {
					acc += cval * weight
					continue
				}
				acc += row[kx] * weight
			}
			dst[y*w+x] = acc
		}
	}
}

// convolveColumns applies the kernel along y. Reads src, writes dst.
func convolveColumns(src, dst []float64, w, h int, kernel []float64, cval float64) {
	half := len(kernel) / 2

	for y := range h {
		for x := range w {
			var acc float64
			for k, weight := range kernel {
				ky := y + k - half
				if ky < 0 || ky >= h {
					acc += cval * weight
					continue
				}
				acc += src[ky*w+x] * weight
			}
			dst[y*w+x] = acc
		}
	}
}
