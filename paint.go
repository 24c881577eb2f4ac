package canvas

import "sort"

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

var (
	lineCapNames  = []string{"butt", "round", "square"}
	lineJoinNames = []string{"miter", "round", "bevel"}
)

// ParseLineCap maps a cap keyword to its LineCap. Unknown keywords report
// ok=false and callers leave the current value unchanged.
func ParseLineCap(s string) (LineCap, bool) {
	switch s {
	case "butt":
		return LineCapButt, true
	case "round":
		return LineCapRound, true
	case "square":
		return LineCapSquare, true
	}
	return LineCapButt, false
}

// ParseLineJoin maps a join keyword to its LineJoin.
func ParseLineJoin(s string) (LineJoin, bool) {
	switch s {
	case "miter":
		return LineJoinMiter, true
	case "round":
		return LineJoinRound, true
	case "bevel":
		return LineJoinBevel, true
	}
	return LineJoinMiter, false
}

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// ParseFillRule maps a canvas fill-rule string to a FillRule.
// "evenodd" selects the even-odd rule; "nonzero" and any unrecognized
// string select the nonzero winding rule.
func ParseFillRule(s string) FillRule {
	if s == "evenodd" {
		return FillRuleEvenOdd
	}
	return FillRuleNonZero
}

// Brush produces the paint color at a point. It is the resolved form of a
// fill or stroke style handed to the paint sink.
type Brush interface {
	// ColorAt returns the color at the given position.
	ColorAt(x, y float64) RGBA

	// Visible reports whether painting with this brush can produce any
	// non-transparent pixel. A non-visible brush lets the pipeline skip
	// the paint call entirely; skipping must be observationally
	// equivalent to painting with full transparency.
	Visible() bool
}

// SolidBrush paints a single flat color.
type SolidBrush struct {
	Color RGBA
}

// ColorAt implements Brush.
func (b SolidBrush) ColorAt(x, y float64) RGBA { return b.Color }

// Visible implements Brush.
func (b SolidBrush) Visible() bool { return b.Color.A > 0 }

// ColorStop is a color at an offset along a gradient.
type ColorStop struct {
	Offset float64
	Color  RGBA
}

// LinearGradient is a linear color transition between two points with an
// ordered list of color stops. Offsets outside [0, 1] are clamped (pad
// extension).
type LinearGradient struct {
	Start Point
	End   Point
	Stops []ColorStop
}

// NewLinearGradient creates a linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{Start: Pt(x0, y0), End: Pt(x1, y1)}
}

// AddColorStop adds a color stop at the given offset and returns the
// gradient for chaining.
func (g *LinearGradient) AddColorStop(offset float64, c RGBA) *LinearGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// ColorAt implements Brush.
func (g *LinearGradient) ColorAt(x, y float64) RGBA {
	if len(g.Stops) == 0 {
		return Transparent
	}

	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy

	stops := sortedStops(g.Stops)
	if lengthSq == 0 {
		return stops[0].Color
	}

	px := x - g.Start.X
	py := y - g.Start.Y
	t := (px*dx + py*dy) / lengthSq

	if t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Offset {
			lo, hi := stops[i-1], stops[i]
			span := hi.Offset - lo.Offset
			if span == 0 {
				return hi.Color
			}
			return lerpColor(lo.Color, hi.Color, (t-lo.Offset)/span)
		}
	}
	return last.Color
}

// Visible implements Brush. A gradient is visible if any stop has alpha.
func (g *LinearGradient) Visible() bool {
	for _, s := range g.Stops {
		if s.Color.A > 0 {
			return true
		}
	}
	return false
}

func sortedStops(stops []ColorStop) []ColorStop {
	out := make([]ColorStop, len(stops))
	copy(out, stops)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Offset < out[j].Offset })
	return out
}

func lerpColor(a, b RGBA, t float64) RGBA {
	return RGBA{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

// asSolidColor reports whether the brush resolves to a flat color, and
// returns it. The shadow pass consults this for its alpha override.
func asSolidColor(b Brush) (RGBA, bool) {
	if sb, ok := b.(SolidBrush); ok {
		return sb.Color, true
	}
	return RGBA{}, false
}
