package image

import "image/color"

// grayOf returns an 8-bit gray color.
func grayOf(y byte) color.Gray { return color.Gray{Y: y} }

// absf returns the absolute value of a float64.
func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// at returns the sample at (x, y).
func at(f *Field, x, y int) float64 {
	return f.data[y*f.width+x]
}

// filled returns a w x h field holding v everywhere.
func filled(w, h int, v float64) *Field {
	data := make([]float64, w*h)
	for i := range data {
		data[i] = v
	}
	return &Field{data: data, width: w, height: h}
}
