package image

import (
	"image"
	"testing"
)

func TestNewField(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr error
	}{
		{"valid", 64, 64, nil},
		{"single pixel", 1, 1, nil},
		{"zero width", 0, 10, ErrInvalidDimensions},
		{"zero height", 10, 0, ErrInvalidDimensions},
		{"negative", -1, 4, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewField(tt.w, tt.h)
			if err != tt.wantErr {
				t.Fatalf("NewField(%d, %d) err = %v, want %v", tt.w, tt.h, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if w, h := f.Bounds(); w != tt.w || h != tt.h {
				t.Errorf("Bounds() = (%d, %d), want (%d, %d)", w, h, tt.w, tt.h)
			}
			if len(f.Data()) != tt.w*tt.h {
				t.Errorf("len(Data()) = %d, want %d", len(f.Data()), tt.w*tt.h)
			}
		})
	}
}

func TestFromValues(t *testing.T) {
	if _, err := FromValues(make([]float64, 5), 3, 2); err != ErrDataTooSmall {
		t.Errorf("FromValues short data err = %v, want ErrDataTooSmall", err)
	}

	f, err := FromValues([]float64{1, 2, 3, 4, 5, 6, 7}, 3, 2)
	if err != nil {
		t.Fatalf("FromValues failed: %v", err)
	}
	if got := at(f, 2, 1); got != 6 {
		t.Errorf("sample (2, 1) = %v, want 6", got)
	}
	if len(f.Data()) != 6 {
		t.Errorf("len(Data()) = %d, want 6", len(f.Data()))
	}
}

func TestFieldInBounds(t *testing.T) {
	f, _ := NewField(4, 3)

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{3, 2, true},
		{4, 0, false},
		{0, 3, false},
		{-1, 0, false},
	}

	for _, tt := range tests {
		if got := f.InBounds(tt.x, tt.y); got != tt.want {
			t.Errorf("InBounds(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestFieldCloneIndependent(t *testing.T) {
	f := filled(2, 2, 3)

	c := f.Clone()
	c.Scale(2)

	if at(f, 0, 0) != 3 {
		t.Errorf("original modified: sample (0, 0) = %v, want 3", at(f, 0, 0))
	}
	if at(c, 1, 1) != 6 {
		t.Errorf("clone sample (1, 1) = %v, want 6", at(c, 1, 1))
	}
	if w, h := c.Bounds(); w != 2 || h != 2 {
		t.Errorf("clone Bounds() = (%d, %d), want (2, 2)", w, h)
	}
}

func TestGrayRoundTrip(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 5, 4))
	for i := range img.Pix {
		img.Pix[i] = byte(i * 11)
	}

	f := FromGray(img)
	if w, h := f.Bounds(); w != 5 || h != 4 {
		t.Fatalf("Bounds() = (%d, %d), want (5, 4)", w, h)
	}

	out := f.ToGray()
	for i := range img.Pix {
		if out.Pix[i] != img.Pix[i] {
			t.Fatalf("Pix[%d] = %d, want %d", i, out.Pix[i], img.Pix[i])
		}
	}
}

func TestFromGraySubImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	img.SetGray(2, 3, grayOf(200))

	sub := img.SubImage(image.Rect(1, 1, 4, 4)).(*image.Gray)
	f := FromGray(sub)

	if w, h := f.Bounds(); w != 3 || h != 3 {
		t.Fatalf("Bounds() = (%d, %d), want (3, 3)", w, h)
	}
	if got := at(f, 1, 2); got != 200 {
		t.Errorf("sample (1, 2) = %v, want 200", got)
	}
}

func TestToGrayClamps(t *testing.T) {
	f, _ := FromValues([]float64{-12, 0.4, 0.5, 254.6, 300}, 5, 1)
	got := f.ToGray().Pix
	want := []byte{0, 0, 1, 255, 255}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Pix[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
