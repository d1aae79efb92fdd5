package text

import (
	"testing"

	"github.com/go-text/typesetting/language"
)

func TestFontSourceHasGlyph(t *testing.T) {
	source := loadTestFont(t)

	tests := []struct {
		r    rune
		want bool
	}{
		{'A', true},
		{'z', true},
		{'é', true},
		{'가', false},
		{'漢', false},
	}

	for _, tt := range tests {
		if got := source.HasGlyph(tt.r); got != tt.want {
			t.Errorf("HasGlyph(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestFontSourceCovers(t *testing.T) {
	source := loadTestFont(t)

	if !source.Covers("Ab") {
		t.Error("Covers(\"Ab\") = false, want true")
	}
	if source.Covers("A가") {
		t.Error("Covers(\"A가\") = true, want false")
	}
	if source.Covers("") {
		t.Error("Covers(\"\") = true, want false")
	}

	missing := source.Missing("a가b나")
	if len(missing) != 2 || missing[0] != '가' || missing[1] != '나' {
		t.Errorf("Missing = %q, want [가 나]", missing)
	}
}

func TestFontSourceHasGlyphAfterClose(t *testing.T) {
	source := loadTestFont(t)
	_ = source.Close()

	// Coverage was never parsed, so the closed source has nothing to answer from.
	if source.HasGlyph('A') {
		t.Error("HasGlyph on closed source = true, want false")
	}
}

func TestScriptOf(t *testing.T) {
	tests := []struct {
		label string
		want  language.Script
	}{
		{"가", language.Hangul},
		{"A", language.Latin},
		{" 나", language.Hangul},
		{"", language.Common},
	}

	for _, tt := range tests {
		if got := ScriptOf(tt.label); got != tt.want {
			t.Errorf("ScriptOf(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}
