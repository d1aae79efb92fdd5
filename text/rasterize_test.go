package text

import (
	"errors"
	"image"
	"testing"
)

// inkCentroid returns the intensity-weighted center of img and its total ink.
func inkCentroid(img *image.Gray) (cx, cy, total float64) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := float64(img.GrayAt(x, y).Y)
			cx += v * float64(x)
			cy += v * float64(y)
			total += v
		}
	}
	if total > 0 {
		cx /= total
		cy /= total
	}
	return cx, cy, total
}

func TestNewRenderer(t *testing.T) {
	r := NewRenderer()

	if r.Width != 64 || r.Height != 64 {
		t.Errorf("size = %dx%d, want 64x64", r.Width, r.Height)
	}
	if r.Size != 48 {
		t.Errorf("Size = %v, want 48", r.Size)
	}
}

func TestRendererRender(t *testing.T) {
	source := loadTestFont(t)
	r := NewRenderer()

	for _, label := range []string{"A", "o", "W", "8"} {
		t.Run(label, func(t *testing.T) {
			img, err := r.Render(source, label)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if img.Bounds() != image.Rect(0, 0, 64, 64) {
				t.Fatalf("Bounds() = %v, want 64x64", img.Bounds())
			}

			cx, cy, total := inkCentroid(img)
			if total == 0 {
				t.Fatal("expected some ink")
			}
			// Advance-based centering keeps glyphs near the middle.
			if cx < 22 || cx > 42 || cy < 20 || cy > 44 {
				t.Errorf("ink centroid = (%.1f, %.1f), want near (32, 32)", cx, cy)
			}
		})
	}
}

func TestRendererBackgroundBlack(t *testing.T) {
	source := loadTestFont(t)

	img, err := NewRenderer().Render(source, ".")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if img.GrayAt(0, 0).Y != 0 || img.GrayAt(63, 0).Y != 0 {
		t.Error("expected black corners")
	}
}

func TestRendererCustomSize(t *testing.T) {
	source := loadTestFont(t)
	r := &Renderer{Width: 32, Height: 20, Size: 12}

	img, err := r.Render(source, "x")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 20 {
		t.Errorf("Bounds() = %v, want 32x20", img.Bounds())
	}
}

func TestRendererEmptyLabel(t *testing.T) {
	source := loadTestFont(t)

	if _, err := NewRenderer().Render(source, ""); !errors.Is(err, ErrEmptyLabel) {
		t.Errorf("Render(\"\") err = %v, want ErrEmptyLabel", err)
	}
}

func TestRendererOrigin(t *testing.T) {
	r := NewRenderer()
	m := Metrics{Ascent: 40, Descent: 12}

	got := r.origin(floatToFixed(30), m)

	if fixedToFloat64(got.X) != 17 {
		t.Errorf("origin X = %v, want 17", fixedToFloat64(got.X))
	}
	// top = (64 - 52) / 2 = 6, baseline = 6 + 40
	if fixedToFloat64(got.Y) != 46 {
		t.Errorf("origin Y = %v, want 46", fixedToFloat64(got.Y))
	}
}
