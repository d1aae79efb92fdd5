package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoFonts is returned when a font directory holds no font files.
	ErrNoFonts = errors.New("text: no font files found")

	// ErrEmptyLabel is returned when asked to render an empty string.
	ErrEmptyLabel = errors.New("text: empty label")

	// ErrClosed is returned when a closed FontSource is used.
	ErrClosed = errors.New("text: font source closed")

	// ErrUnknownHinting is returned by ParseHinting for an unknown mode name.
	ErrUnknownHinting = errors.New("text: unknown hinting mode")
)
