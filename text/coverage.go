package text

import (
	"bytes"

	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"golang.org/x/image/font/sfnt"
)

// coverage answers cmap lookups for a FontSource.
// face is nil when go-text could not parse the font; lookups then fall
// back to the x/image glyph index.
type coverage struct {
	face *gtfont.Face
}

// loadCoverage parses the cmap once per source.
func (s *FontSource) loadCoverage() *coverage {
	s.coverOnce.Do(func() {
		s.mu.RLock()
		data := s.data
		s.mu.RUnlock()

		c := &coverage{}
		if len(data) > 0 {
			if face, err := gtfont.ParseTTF(bytes.NewReader(data)); err == nil {
				c.face = face
			}
		}
		s.cover = c
	})
	return s.cover
}

// HasGlyph reports whether the font maps r to a glyph.
func (s *FontSource) HasGlyph(r rune) bool {
	s.copyCheck()

	if c := s.loadCoverage(); c.face != nil {
		_, ok := c.face.NominalGlyph(r)
		return ok
	}

	s.mu.RLock()
	parsed := s.parsed
	s.mu.RUnlock()
	if parsed == nil {
		return false
	}
	idx, err := parsed.GlyphIndex(new(sfnt.Buffer), r)
	return err == nil && idx != 0
}

// Covers reports whether every rune of label has a glyph in the font.
// An empty label is not covered.
func (s *FontSource) Covers(label string) bool {
	if label == "" {
		return false
	}
	return len(s.Missing(label)) == 0
}

// Missing returns the runes of label the font has no glyph for, in order.
func (s *FontSource) Missing(label string) []rune {
	var missing []rune
	for _, r := range label {
		if !s.HasGlyph(r) {
			missing = append(missing, r)
		}
	}
	return missing
}

// ScriptOf returns the Unicode script of the first non-space rune of label.
func ScriptOf(label string) language.Script {
	for _, r := range label {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Common
}
