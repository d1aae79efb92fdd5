// Package distort implements elastic distortion of grayscale rasters.
//
// Elastic distortion draws two uniform random displacement fields, smooths
// them with a Gaussian filter and scales them by alpha. Every destination
// pixel then samples the source at its displaced position with bilinear
// interpolation. The result looks like the small stroke wobble of
// handwriting and is used to augment rendered glyphs.
//
//	e := distort.Elastic{Alpha: 34, Sigma: 5}
//	warped := e.Apply(glyph)
//
// A nil Rand draws from a freshly seeded source on every call. Pass a
// seeded *rand.Rand for reproducible output.
package distort

import (
	stdimage "image"
	"math/rand/v2"

	"github.com/gogpu/glyphset/internal/filter"
	"github.com/gogpu/glyphset/internal/image"
)

// Elastic is a single elastic distortion with fixed parameters.
type Elastic struct {
	// Alpha scales the smoothed displacement, in pixels.
	// Alpha 0 leaves the image unchanged.
	Alpha float64

	// Sigma is the standard deviation of the smoothing filter.
	// Values <= 0 skip smoothing.
	Sigma float64

	// Rand is the random source for displacement fields.
	// nil means a fresh randomly seeded source per call.
	Rand *rand.Rand
}

// Apply distorts src and returns a new image of the same size.
func (e Elastic) Apply(src *stdimage.Gray) *stdimage.Gray {
	if src.Bounds().Empty() {
		return stdimage.NewGray(stdimage.Rect(0, 0, 0, 0))
	}
	return e.warp(image.FromGray(src)).ToGray()
}

// Displacement returns the horizontal and vertical displacement fields
// for a width x height raster. Each call consumes randomness from Rand.
// A non-positive size yields nil fields.
func (e Elastic) Displacement(width, height int) (dx, dy *image.Field) {
	if width <= 0 || height <= 0 {
		return nil, nil
	}
	rng := e.source()
	dx = e.smoothedField(rng, width, height)
	dy = e.smoothedField(rng, width, height)
	return dx, dy
}

// warp resamples src along a fresh displacement field.
func (e Elastic) warp(src *image.Field) *image.Field {
	w, h := src.Bounds()
	dx, dy := e.Displacement(w, h)

	dst, _ := image.NewField(w, h)
	out := dst.Data()
	dxs, dys := dx.Data(), dy.Data()

	for y := range h {
		for x := range w {
			i := y*w + x
			sx := float64(x) + dxs[i]
			sy := float64(y) + dys[i]
			out[i] = image.SampleBilinear(src, sx, sy, 0)
		}
	}
	return dst
}

// smoothedField draws a uniform [-1, 1] field, blurs it and scales by Alpha.
func (e Elastic) smoothedField(rng *rand.Rand, width, height int) *image.Field {
	f, _ := image.NewField(width, height)
	data := f.Data()
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}

	f = filter.Blur(f, e.Sigma)
	f.Scale(e.Alpha)
	return f
}

func (e Elastic) source() *rand.Rand {
	if e.Rand != nil {
		return e.Rand
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
