package canvas

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// PathSource is anything that can supply path geometry to a drawing call.
// Both the context's mutable current path and the frozen Path2D value
// satisfy it, so every fill/stroke/clip entry point accepts either.
type PathSource interface {
	PathElements() []PathElement
}

// Path is a mutable vector path: an ordered sequence of subpaths, each an
// ordered sequence of move/line/curve/close segments.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve to (x, y) with control
// point (cx, cy).
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
	p.current = Pt(x, y)
}

// CubicTo draws a cubic Bezier curve to (x, y) with control points
// (c1x, c1y) and (c2x, c2y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	p.current = Pt(x, y)
}

// ClosePath closes the current subpath by connecting back to its start.
func (p *Path) ClosePath() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Rect appends a closed four-point rectangular subpath:
// top-left, top-right, bottom-right, bottom-left, close. Negative width or
// height simply reverses the point order; callers needing positive
// rectangle semantics normalize beforehand.
func (p *Path) Rect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.ClosePath()
}

// Arc appends a circular arc centered at (x, y), connected to the current
// point by a line segment. Angles are in radians, measured clockwise from
// the positive x axis.
func (p *Path) Arc(x, y, radius, startAngle, endAngle float64, counterclockwise bool) {
	p.Ellipse(x, y, radius, radius, 0, startAngle, endAngle, counterclockwise)
}

// Ellipse appends an elliptical arc centered at (x, y) with the given
// radii and axis rotation, approximated by cubic segments of at most a
// quarter turn each.
func (p *Path) Ellipse(x, y, radiusX, radiusY, rotation, startAngle, endAngle float64, counterclockwise bool) {
	if radiusX < 0 || radiusY < 0 {
		return
	}

	sweep := endAngle - startAngle
	if counterclockwise {
		if sweep <= -2*math.Pi {
			sweep = -2 * math.Pi
		} else {
			sweep = math.Mod(sweep, 2*math.Pi)
			if sweep > 0 {
				sweep -= 2 * math.Pi
			}
		}
	} else {
		if sweep >= 2*math.Pi {
			sweep = 2 * math.Pi
		} else {
			sweep = math.Mod(sweep, 2*math.Pi)
			if sweep < 0 {
				sweep += 2 * math.Pi
			}
		}
	}

	frame := Translate(x, y).Multiply(Rotate(rotation)).Multiply(Scale(radiusX, radiusY))
	pointAt := func(angle float64) Point {
		return frame.TransformPoint(Pt(math.Cos(angle), math.Sin(angle)))
	}

	start := pointAt(startAngle)
	if len(p.elements) == 0 {
		p.MoveTo(start.X, start.Y)
	} else {
		p.LineTo(start.X, start.Y)
	}

	segments := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	if segments == 0 {
		return
	}
	step := sweep / float64(segments)
	// Cubic approximation of a unit arc segment: control-point distance
	// along the tangent is (4/3)tan(step/4).
	k := 4.0 / 3.0 * math.Tan(step/4)

	a0 := startAngle
	for i := 0; i < segments; i++ {
		a1 := a0 + step
		p0 := Pt(math.Cos(a0), math.Sin(a0))
		p3 := Pt(math.Cos(a1), math.Sin(a1))
		c1 := Pt(p0.X-k*p0.Y, p0.Y+k*p0.X)
		c2 := Pt(p3.X+k*p3.Y, p3.Y-k*p3.X)

		u1 := frame.TransformPoint(c1)
		u2 := frame.TransformPoint(c2)
		u3 := frame.TransformPoint(p3)
		p.CubicTo(u1.X, u1.Y, u2.X, u2.Y, u3.X, u3.Y)
		a0 = a1
	}
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// PathElements implements PathSource.
func (p *Path) PathElements() []PathElement {
	return p.elements
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// Freeze returns an immutable snapshot of the path. Later mutations of p
// do not affect the snapshot.
func (p *Path) Freeze() *Path2D {
	elems := make([]PathElement, len(p.elements))
	copy(elems, p.elements)
	return &Path2D{elements: elems}
}

// Path2D is an immutable path value that callers may hold independently of
// any context and pass into drawing calls.
type Path2D struct {
	elements []PathElement
}

// NewPath2D creates an empty immutable path builder result from the given
// construction function. The builder path is discarded after fn returns.
//
//	p := canvas.NewPath2D(func(b *canvas.Path) {
//		b.MoveTo(0, 0)
//		b.LineTo(10, 10)
//	})
func NewPath2D(fn func(b *Path)) *Path2D {
	b := NewPath()
	if fn != nil {
		fn(b)
	}
	return b.Freeze()
}

// RectPath constructs a frozen closed rectangular path, the geometry used
// by fillRect/strokeRect/clearRect.
func RectPath(x, y, w, h float64) *Path2D {
	b := NewPath()
	b.Rect(x, y, w, h)
	return b.Freeze()
}

// PathElements implements PathSource.
func (p *Path2D) PathElements() []PathElement {
	return p.elements
}

// IsEmpty reports whether the path has no elements.
func (p *Path2D) IsEmpty() bool {
	return len(p.elements) == 0
}

// Transformed returns a copy of the path with the affine transform applied
// to every point.
func (p *Path2D) Transformed(m Matrix) *Path2D {
	out := make([]PathElement, len(p.elements))
	for i, e := range p.elements {
		switch e := e.(type) {
		case MoveTo:
			out[i] = MoveTo{Point: m.TransformPoint(e.Point)}
		case LineTo:
			out[i] = LineTo{Point: m.TransformPoint(e.Point)}
		case QuadTo:
			out[i] = QuadTo{
				Control: m.TransformPoint(e.Control),
				Point:   m.TransformPoint(e.Point),
			}
		case CubicTo:
			out[i] = CubicTo{
				Control1: m.TransformPoint(e.Control1),
				Control2: m.TransformPoint(e.Control2),
				Point:    m.TransformPoint(e.Point),
			}
		case Close:
			out[i] = e
		}
	}
	return &Path2D{elements: out}
}

// freezeSource snapshots any path source into an immutable value.
func freezeSource(src PathSource) *Path2D {
	if p, ok := src.(*Path2D); ok {
		return p
	}
	elems := src.PathElements()
	out := make([]PathElement, len(elems))
	copy(out, elems)
	return &Path2D{elements: out}
}
