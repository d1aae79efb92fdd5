package text

import (
	"fmt"
	"strings"

	"golang.org/x/image/font"
)

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	dpi     float64
	hinting font.Hinting
}

// defaultSourceConfig returns the default source configuration.
// At 72 DPI one point equals one pixel.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		dpi:     72,
		hinting: font.HintingFull,
	}
}

// WithDPI sets the resolution used to convert point sizes to pixels.
func WithDPI(dpi float64) SourceOption {
	return func(c *sourceConfig) {
		if dpi > 0 {
			c.dpi = dpi
		}
	}
}

// WithHinting sets the hinting mode for faces created from the source.
func WithHinting(h font.Hinting) SourceOption {
	return func(c *sourceConfig) {
		c.hinting = h
	}
}

// ParseHinting maps "none", "vertical" or "full" (case-insensitive) to a
// hinting mode.
func ParseHinting(s string) (font.Hinting, error) {
	switch strings.ToLower(s) {
	case "none":
		return font.HintingNone, nil
	case "vertical":
		return font.HintingVertical, nil
	case "full":
		return font.HintingFull, nil
	default:
		return font.HintingNone, fmt.Errorf("%w: %q", ErrUnknownHinting, s)
	}
}
