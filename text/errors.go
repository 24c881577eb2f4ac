package text

import "errors"

// Sentinel errors for the text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrGlyphNotFound is returned when a glyph outline cannot be loaded.
	ErrGlyphNotFound = errors.New("text: glyph not found")
)
