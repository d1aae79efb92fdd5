package text

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Default canvas geometry.
const (
	DefaultWidth    = 64
	DefaultHeight   = 64
	DefaultFontSize = 48
)

// Renderer draws a label in white on a black grayscale canvas.
//
// The label is centered horizontally by its advance width and vertically
// by the face's ascent + descent, so every glyph of a font shares one
// baseline regardless of its own ink bounds.
type Renderer struct {
	Width  int
	Height int

	// Size is the font size in points.
	Size float64
}

// NewRenderer returns a 64x64 renderer at 48 points.
func NewRenderer() *Renderer {
	return &Renderer{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Size:   DefaultFontSize,
	}
}

// Render rasterizes label with src onto a new canvas.
func (r *Renderer) Render(src *FontSource, label string) (*image.Gray, error) {
	if label == "" {
		return nil, ErrEmptyLabel
	}

	face, err := src.Face(r.Size)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = face.Close()
	}()

	canvas := image.NewGray(image.Rect(0, 0, r.Width, r.Height))

	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.White,
		Face: face,
	}
	drawer.Dot = r.origin(drawer.MeasureString(label), metricsOf(face))
	drawer.DrawString(label)

	return canvas, nil
}

// origin returns the baseline start point that centers a run of the given
// advance on the canvas.
func (r *Renderer) origin(advance fixed.Int26_6, m Metrics) fixed.Point26_6 {
	x := (fixed.I(r.Width) - advance) / 2
	top := (float64(r.Height) - m.Height()) / 2
	return fixed.Point26_6{
		X: x,
		Y: floatToFixed(top + m.Ascent),
	}
}
