package text

// ShapedGlyph is a positioned glyph produced by shaping.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID GlyphID

	// Cluster is the source character index in the original text. Used
	// for hit testing and cursor positioning.
	Cluster int

	// X is the horizontal position relative to the text origin.
	X float64

	// Y is the vertical position relative to the baseline.
	Y float64

	// XAdvance is the horizontal advance to the next glyph.
	XAdvance float64
}

// Run is a shaped glyph run with its aggregate geometry.
type Run struct {
	Glyphs []ShapedGlyph

	// Advance is the sum of glyph advances.
	Advance float64

	// FontSize is the pixel size the run was shaped at.
	FontSize float64
}

// ShapeRun shapes text with the given shaper and face and aggregates the
// result into a Run.
func ShapeRun(s Shaper, str string, face Face) Run {
	glyphs := s.Shape(str, face)
	run := Run{Glyphs: glyphs, FontSize: face.Size()}
	for _, g := range glyphs {
		run.Advance += g.XAdvance
	}
	return run
}
