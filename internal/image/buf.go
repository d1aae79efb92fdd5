// Package image provides the floating-point intensity grid used by glyphset
// transforms.
//
// A Field stores one float64 sample per pixel in row-major order. Values are
// kept unclamped while a transform runs and only rounded back to 8-bit when
// converted to an *image.Gray.
package image

import (
	"errors"
	"image"
)

// Common errors for field operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")
)

// Field is a single-channel grid of float64 intensities.
//
// Field is not safe for concurrent mutation.
type Field struct {
	data   []float64
	width  int
	height int
}

// NewField creates a zero-filled field with the given dimensions.
func NewField(width, height int) (*Field, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Field{
		data:   make([]float64, width*height),
		width:  width,
		height: height,
	}, nil
}

// FromValues creates a field over existing data without copying.
// The caller must not reuse data after this call.
func FromValues(data []float64, width, height int) (*Field, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) < width*height {
		return nil, ErrDataTooSmall
	}
	return &Field{
		data:   data[:width*height],
		width:  width,
		height: height,
	}, nil
}

// Bounds returns the field dimensions.
func (f *Field) Bounds() (width, height int) { return f.width, f.height }

// Data returns the underlying row-major samples.
// Modifications to the returned slice affect the field.
func (f *Field) Data() []float64 { return f.data }

// InBounds reports whether (x, y) addresses a sample of the field.
func (f *Field) InBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Scale multiplies every sample by k in place.
func (f *Field) Scale(k float64) {
	for i := range f.data {
		f.data[i] *= k
	}
}

// Clone returns a deep copy of the field.
func (f *Field) Clone() *Field {
	data := make([]float64, len(f.data))
	copy(data, f.data)
	return &Field{data: data, width: f.width, height: f.height}
}

// FromGray converts an 8-bit grayscale image to a field.
// The image origin is moved to (0, 0).
func FromGray(img *image.Gray) *Field {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	f := &Field{data: make([]float64, w*h), width: w, height: h}

	for y := range h {
		row := img.Pix[(y+bounds.Min.Y-img.Rect.Min.Y)*img.Stride:]
		off := bounds.Min.X - img.Rect.Min.X
		for x := range w {
			f.data[y*w+x] = float64(row[off+x])
		}
	}
	return f
}

// ToGray converts the field to an 8-bit grayscale image.
// Samples are rounded to the nearest integer and clamped to [0, 255].
func (f *Field) ToGray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, f.width, f.height))
	for y := range f.height {
		row := img.Pix[y*img.Stride:]
		for x := range f.width {
			row[x] = clampByte(f.data[y*f.width+x])
		}
	}
	return img
}

// clampByte rounds v half away from zero and clamps it to the byte range.
func clampByte(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v + 0.5)
}
