package canvas

import (
	"math"
	"strings"

	"github.com/me-it-is/ladybird/text"
)

// TextMetrics is the measurement result for a string under the current
// font and alignment state. Ascent/descent metrics are approximated from
// the font's baseline and the shaped bounding box; the alphabetic and
// ideographic baselines are always 0.
type TextMetrics struct {
	Width float64

	ActualBoundingBoxLeft  float64
	ActualBoundingBoxRight float64

	FontBoundingBoxAscent  float64
	FontBoundingBoxDescent float64

	ActualBoundingBoxAscent  float64
	ActualBoundingBoxDescent float64

	EmHeightAscent  float64
	EmHeightDescent float64

	HangingBaseline     float64
	AlphabeticBaseline  float64
	IdeographicBaseline float64
}

// preparedText is the ephemeral result of the text preparation algorithm:
// one shaped run plus its layout-space bounding extents.
type preparedText struct {
	run    text.Run
	face   text.Face
	width  float64
	height float64
}

// FillText fills the text at (x, y) with the fill style. An optional
// maxWidth horizontally compresses text wider than the limit. Non-finite
// arguments do nothing.
func (c *Context) FillText(s string, x, y float64, maxWidth ...float64) {
	limit, hasLimit, ok := textLimit(x, y, maxWidth)
	if !ok {
		return
	}
	path := c.textPath(s, x, y, limit, hasLimit)
	if path == nil {
		return
	}
	c.fillInternal(path, FillRuleNonZero)
}

// StrokeText strokes the text outline at (x, y) with the stroke style.
func (c *Context) StrokeText(s string, x, y float64, maxWidth ...float64) {
	limit, hasLimit, ok := textLimit(x, y, maxWidth)
	if !ok {
		return
	}
	path := c.textPath(s, x, y, limit, hasLimit)
	if path == nil {
		return
	}
	c.strokeInternal(path)
}

func textLimit(x, y float64, maxWidth []float64) (limit float64, hasLimit, ok bool) {
	if !isFinite(x) || !isFinite(y) {
		return 0, false, false
	}
	if len(maxWidth) == 0 {
		return 0, false, true
	}
	if !isFinite(maxWidth[0]) {
		return 0, false, false
	}
	return maxWidth[0], true, true
}

// MeasureText runs the text preparation algorithm and maps the resulting
// inline box to metrics. Without a configured face all metrics are zero.
func (c *Context) MeasureText(s string) TextMetrics {
	prepared, ok := c.prepareText(s, 0, false)
	if !ok {
		return TextMetrics{}
	}

	// The single-baseline approximation: every ascent-family metric is
	// the font baseline, every descent-family metric the remainder of
	// the box below it.
	baseline := prepared.face.Metrics().Ascent
	descent := prepared.height - baseline

	return TextMetrics{
		Width:                    prepared.width,
		ActualBoundingBoxLeft:    0,
		ActualBoundingBoxRight:   prepared.width,
		FontBoundingBoxAscent:    baseline,
		FontBoundingBoxDescent:   descent,
		ActualBoundingBoxAscent:  baseline,
		ActualBoundingBoxDescent: descent,
		EmHeightAscent:           baseline,
		EmHeightDescent:          descent,
		HangingBaseline:          baseline,
		AlphabeticBaseline:       0,
		IdeographicBaseline:      0,
	}
}

// prepareText implements the text preparation algorithm: whitespace
// collapse, shaping, and the hypothetical inline box extents. A maxWidth
// that is NaN or not positive yields an empty result.
func (c *Context) prepareText(s string, maxWidth float64, hasLimit bool) (preparedText, bool) {
	if hasLimit && (maxWidth <= 0 || math.IsNaN(maxWidth)) {
		return preparedText{}, false
	}

	face := c.sizedFace(s)
	if face == nil {
		return preparedText{}, false
	}

	collapsed := collapseWhitespace(s)
	run := text.ShapeRun(c.textShaper(), collapsed, face)

	return preparedText{
		run:    run,
		face:   face,
		width:  run.Advance,
		height: run.FontSize,
	}, true
}

// textPath builds the glyph outline path for the text, anchored at (x, y)
// under the active alignment, baseline and direction state.
func (c *Context) textPath(s string, x, y float64, maxWidth float64, hasLimit bool) *Path2D {
	prepared, ok := c.prepareText(s, maxWidth, hasLimit)
	if !ok {
		return nil
	}

	raw := glyphRunPath(prepared.face, prepared.run)

	width := prepared.width
	transform := Identity()

	// Compress to fit: only the horizontal scale is applied; no condensed
	// or smaller font is substituted.
	if hasLimit && width > maxWidth {
		scale := maxWidth / width
		transform = Scale(scale, 1)
		width *= scale
	}

	st := c.state()
	isRTL := c.resolveDirection(s) == text.DirectionRTL

	switch st.TextAlign {
	case AlignCenter:
		transform = Translate(-width/2, 0).Multiply(transform)
	case AlignStart:
		if isRTL {
			transform = Translate(-width, 0).Multiply(transform)
		}
	case AlignEnd:
		if !isRTL {
			transform = Translate(-width, 0).Multiply(transform)
		}
	case AlignRight:
		transform = Translate(-width, 0).Multiply(transform)
	}

	// Top and hanging anchor at the top of the box; middle at its
	// center; the remaining baselines sit on the font baseline.
	switch st.TextBaseline {
	case BaselineMiddle:
		transform = Translate(0, prepared.height/2).Multiply(transform)
	case BaselineTop, BaselineHanging:
		transform = Translate(0, prepared.height).Multiply(transform)
	}

	transform = Translate(x, y).Multiply(transform)
	return raw.Transformed(transform)
}

// glyphRunPath converts a shaped run into a path at the origin, glyph by
// glyph, using the face's vector outlines.
func glyphRunPath(face text.Face, run text.Run) *Path2D {
	return NewPath2D(func(b *Path) {
		for _, g := range run.Glyphs {
			outline, err := face.GlyphOutline(g.GID)
			if err != nil || outline.IsEmpty() {
				continue
			}
			appendOutline(b, outline, g.X, g.Y)
		}
	})
}

func appendOutline(b *Path, outline text.GlyphOutline, dx, dy float64) {
	for _, seg := range outline.Segments {
		switch seg.Op {
		case text.OutlineOpMoveTo:
			b.MoveTo(seg.Points[0].X+dx, seg.Points[0].Y+dy)
		case text.OutlineOpLineTo:
			b.LineTo(seg.Points[0].X+dx, seg.Points[0].Y+dy)
		case text.OutlineOpQuadTo:
			b.QuadraticTo(
				seg.Points[0].X+dx, seg.Points[0].Y+dy,
				seg.Points[1].X+dx, seg.Points[1].Y+dy)
		case text.OutlineOpCubicTo:
			b.CubicTo(
				seg.Points[0].X+dx, seg.Points[0].Y+dy,
				seg.Points[1].X+dx, seg.Points[1].Y+dy,
				seg.Points[2].X+dx, seg.Points[2].Y+dy)
		}
	}
}

// sizedFace derives a face at the state's font size, with the resolved
// text direction. Returns nil, with a warning, when no face is
// configured; text operations then do nothing.
func (c *Context) sizedFace(s string) text.Face {
	if c.face == nil {
		Logger().Warn("canvas: no font face configured, text operation skipped")
		return nil
	}
	dir := c.resolveDirection(s)
	return c.face.Source().Face(c.state().FontSize, text.WithDirection(dir))
}

// resolveDirection maps the direction attribute to a concrete direction,
// resolving "inherit" from the text's first strongly directional
// character.
func (c *Context) resolveDirection(s string) text.Direction {
	switch c.state().Direction {
	case DirectionLTR:
		return text.DirectionLTR
	case DirectionRTL:
		return text.DirectionRTL
	default:
		return text.DetectDirection(s)
	}
}

func (c *Context) textShaper() text.Shaper {
	if c.shaper != nil {
		return c.shaper
	}
	return text.GetShaper()
}

// collapseWhitespace replaces every ASCII whitespace character with a
// plain space, per the text preparation algorithm.
func collapseWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\n', '\f', '\r':
			return ' '
		}
		return r
	}, s)
}
