package text

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

func TestDefaultSourceConfig(t *testing.T) {
	c := defaultSourceConfig()

	if c.dpi != 72 {
		t.Errorf("dpi = %v, want 72", c.dpi)
	}
	if c.hinting != font.HintingFull {
		t.Errorf("hinting = %v, want HintingFull", c.hinting)
	}
}

func TestWithDPI(t *testing.T) {
	base := loadTestFont(t)

	hi, err := NewFontSource(goregular.TTF, WithDPI(144), WithHinting(font.HintingNone))
	if err != nil {
		t.Fatalf("NewFontSource failed: %v", err)
	}
	defer func() { _ = hi.Close() }()

	lo, err := NewFontSource(goregular.TTF, WithHinting(font.HintingNone))
	if err != nil {
		t.Fatalf("NewFontSource failed: %v", err)
	}
	defer func() { _ = lo.Close() }()

	loFace, err := lo.Face(24)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = loFace.Close() }()
	hiFace, err := hi.Face(24)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = hiFace.Close() }()

	// 24pt at 144 DPI is 48px, twice the 72 DPI ascent.
	loAscent := metricsOf(loFace).Ascent
	hiAscent := metricsOf(hiFace).Ascent
	if math.Abs(hiAscent-2*loAscent) > 1 {
		t.Errorf("ascent at 144 DPI = %v, want ~%v", hiAscent, 2*loAscent)
	}

	if base.config.dpi != 72 {
		t.Errorf("default dpi = %v, want 72", base.config.dpi)
	}
}

func TestWithDPIIgnoresNonPositive(t *testing.T) {
	c := defaultSourceConfig()
	WithDPI(0)(&c)
	WithDPI(-10)(&c)

	if c.dpi != 72 {
		t.Errorf("dpi = %v, want 72", c.dpi)
	}
}

func TestWithHinting(t *testing.T) {
	source, err := NewFontSource(goregular.TTF, WithHinting(font.HintingVertical))
	if err != nil {
		t.Fatalf("NewFontSource failed: %v", err)
	}
	defer func() { _ = source.Close() }()

	if source.config.hinting != font.HintingVertical {
		t.Errorf("hinting = %v, want HintingVertical", source.config.hinting)
	}
}

func TestParseHinting(t *testing.T) {
	tests := []struct {
		in      string
		want    font.Hinting
		wantErr bool
	}{
		{"none", font.HintingNone, false},
		{"Vertical", font.HintingVertical, false},
		{"FULL", font.HintingFull, false},
		{"light", font.HintingNone, true},
		{"", font.HintingNone, true},
	}

	for _, tt := range tests {
		got, err := ParseHinting(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownHinting) {
				t.Errorf("ParseHinting(%q) err = %v, want ErrUnknownHinting", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseHinting(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestLoadFontsAppliesOptions(t *testing.T) {
	dir := t.TempDir()
	writeTestFont(t, dir, "go.ttf")

	sources, err := LoadFonts(dir, WithDPI(96), WithHinting(font.HintingNone))
	if err != nil {
		t.Fatalf("LoadFonts failed: %v", err)
	}
	defer func() { _ = CloseAll(sources) }()

	if sources[0].config.dpi != 96 || sources[0].config.hinting != font.HintingNone {
		t.Errorf("config = %+v, want dpi 96 and HintingNone", sources[0].config)
	}
}
