// Package text provides font loading, HarfBuzz shaping and glyph outline
// extraction for canvas text drawing.
//
// A [FontSource] is a parsed font file; it is heavyweight and meant to be
// shared. A [Face] is a lightweight view of a source at one pixel size.
// Shaping turns a string plus a face into positioned glyphs via the
// process-wide [Shaper], which defaults to the go-text/typesetting
// HarfBuzz implementation.
//
//	src, err := text.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	face := src.Face(16)
//	glyphs := text.Shape("Hello", face)
package text
