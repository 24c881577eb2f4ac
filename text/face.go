package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Face represents a font face at a specific pixel size.
// Face is safe for concurrent use.
type Face interface {
	// Metrics returns the font metrics at this face's size.
	Metrics() Metrics

	// Advance returns the total advance width of the text in pixels,
	// without shaping (no kerning or ligatures).
	Advance(text string) float64

	// HasGlyph reports whether the font has a glyph for the given rune.
	HasGlyph(r rune) bool

	// GlyphOutline loads the vector outline of a glyph, scaled to the
	// face size. Coordinates are y-down with the origin on the baseline.
	GlyphOutline(gid GlyphID) (GlyphOutline, error)

	// GlyphAdvance returns the advance width of a single glyph.
	GlyphAdvance(gid GlyphID) float64

	// Direction returns the text direction configured for this face.
	Direction() Direction

	// Source returns the FontSource this face was created from.
	Source() *FontSource

	// Size returns the pixel size of this face.
	Size() float64

	// private prevents external implementation.
	private()
}

// FaceOption configures a Face during creation.
type FaceOption func(*faceConfig)

type faceConfig struct {
	direction Direction
}

func defaultFaceConfig() faceConfig {
	return faceConfig{direction: DirectionLTR}
}

// WithDirection sets the text direction for the face.
func WithDirection(d Direction) FaceOption {
	return func(c *faceConfig) {
		c.direction = d
	}
}

// GlyphOutline is the vector outline of one glyph in pixel units.
type GlyphOutline struct {
	// Segments is the list of path segments forming the outline.
	Segments []OutlineSegment

	// Advance is the horizontal advance width.
	Advance float64
}

// IsEmpty reports whether the outline has no segments, as for whitespace
// glyphs.
func (o GlyphOutline) IsEmpty() bool { return len(o.Segments) == 0 }

// OutlineOp is the type of an outline path operation.
type OutlineOp uint8

const (
	OutlineOpMoveTo OutlineOp = iota
	OutlineOpLineTo
	OutlineOpQuadTo
	OutlineOpCubicTo
)

// OutlinePoint is a point in an outline, in pixels, y-down.
type OutlinePoint struct {
	X, Y float64
}

// OutlineSegment is one segment of a glyph outline.
//   - MoveTo, LineTo: Points[0] is the target point
//   - QuadTo: Points[0] is the control, Points[1] the target
//   - CubicTo: Points[0] and Points[1] are controls, Points[2] the target
type OutlineSegment struct {
	Op     OutlineOp
	Points [3]OutlinePoint
}

// sourceFace is the internal implementation of Face.
type sourceFace struct {
	source *FontSource
	size   float64
	config faceConfig
}

func (f *sourceFace) Metrics() Metrics {
	var buf sfnt.Buffer
	m, err := f.source.font.Metrics(&buf, f.ppem(), font.HintingFull)
	if err != nil {
		return Metrics{}
	}

	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent) // positive, below baseline
	return Metrics{
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   fixedToFloat(m.Height) - ascent - descent,
		XHeight:   fixedToFloat(m.XHeight),
		CapHeight: fixedToFloat(m.CapHeight),
	}
}

func (f *sourceFace) Advance(text string) float64 {
	var buf sfnt.Buffer
	total := 0.0
	for _, r := range text {
		gid, err := f.source.font.GlyphIndex(&buf, r)
		if err != nil {
			continue
		}
		adv, err := f.source.font.GlyphAdvance(&buf, gid, f.ppem(), font.HintingFull)
		if err != nil {
			continue
		}
		total += fixedToFloat(adv)
	}
	return total
}

func (f *sourceFace) HasGlyph(r rune) bool {
	var buf sfnt.Buffer
	gid, err := f.source.font.GlyphIndex(&buf, r)
	return err == nil && gid != 0
}

func (f *sourceFace) GlyphOutline(gid GlyphID) (GlyphOutline, error) {
	var buf sfnt.Buffer
	segs, err := f.source.font.LoadGlyph(&buf, sfnt.GlyphIndex(gid), f.ppem(), nil)
	if err != nil {
		return GlyphOutline{}, ErrGlyphNotFound
	}

	out := GlyphOutline{
		Segments: make([]OutlineSegment, 0, len(segs)),
		Advance:  f.GlyphAdvance(gid),
	}
	for _, s := range segs {
		seg := OutlineSegment{}
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			seg.Op = OutlineOpMoveTo
		case sfnt.SegmentOpLineTo:
			seg.Op = OutlineOpLineTo
		case sfnt.SegmentOpQuadTo:
			seg.Op = OutlineOpQuadTo
		case sfnt.SegmentOpCubeTo:
			seg.Op = OutlineOpCubicTo
		}
		for i, p := range s.Args {
			seg.Points[i] = OutlinePoint{
				X: fixedToFloat(p.X),
				Y: fixedToFloat(p.Y),
			}
		}
		out.Segments = append(out.Segments, seg)
	}
	return out, nil
}

func (f *sourceFace) GlyphAdvance(gid GlyphID) float64 {
	var buf sfnt.Buffer
	adv, err := f.source.font.GlyphAdvance(&buf, sfnt.GlyphIndex(gid), f.ppem(), font.HintingFull)
	if err != nil {
		return 0
	}
	return fixedToFloat(adv)
}

func (f *sourceFace) Direction() Direction { return f.config.direction }

func (f *sourceFace) Source() *FontSource { return f.source }

func (f *sourceFace) Size() float64 { return f.size }

func (f *sourceFace) private() {}

func (f *sourceFace) ppem() fixed.Int26_6 {
	return fixed.Int26_6(f.size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
