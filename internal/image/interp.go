package image

import "math"

// SampleBilinear performs order-1 interpolation at pixel coordinates (x, y).
// Pixel centers lie on integer coordinates.
//
// The result is the weighted sum of the four surrounding samples, and
// samples outside the field contribute cval. This is the grid-constant
// boundary: a point between the last pixel center and the edge
// (n-1 < x < n) blends toward cval instead of snapping to it, and only
// points at or beyond x <= -1 or x >= n return cval exactly. At integer
// coordinates the result equals the stored sample exactly.
func SampleBilinear(f *Field, x, y, cval float64) float64 {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	tx := x - float64(x0)
	ty := y - float64(y0)

	v00 := sampleOr(f, x0, y0, cval)
	v10 := sampleOr(f, x0+1, y0, cval)
	v01 := sampleOr(f, x0, y0+1, cval)
	v11 := sampleOr(f, x0+1, y0+1, cval)

	return lerp2D(v00, v10, v01, v11, tx, ty)
}

// sampleOr returns the sample at (x, y) or cval outside the field.
func sampleOr(f *Field, x, y int, cval float64) float64 {
	if !f.InBounds(x, y) {
		return cval
	}
	return f.data[y*f.width+x]
}

// lerp2D performs 2D linear interpolation between four corners.
func lerp2D(v00, v10, v01, v11, tx, ty float64) float64 {
	return v00*(1-tx)*(1-ty) +
		v10*tx*(1-ty) +
		v01*(1-tx)*ty +
		v11*tx*ty
}
