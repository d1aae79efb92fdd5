// Package text loads fonts and rasterizes single labels into fixed-size
// grayscale canvases.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF files)
//   - Renderer: draws a label centered on a canvas at a fixed point size
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("NanumGothic.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	r := text.NewRenderer()
//	if !source.Covers("가") {
//	    // font has no glyph for the label
//	}
//	img, err := r.Render(source, "가")
//
// Outlines are parsed and rasterized with golang.org/x/image/font/opentype.
// Glyph coverage is answered from the cmap table through
// github.com/go-text/typesetting, which also resolves the Unicode script of
// a label for diagnostics.
package text
