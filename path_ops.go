package canvas

import "math"

// flattenTolerance is the maximum deviation, in user units, of a flattened
// curve from the true curve.
const flattenTolerance = 0.1

// Flatten approximates the path by polygons, one per subpath. Curves are
// subdivided until they deviate from their chord by at most tolerance.
// Subpaths ended by Close are closed explicitly (last point == first).
func (p *Path2D) Flatten(tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = flattenTolerance
	}

	var polys [][]Point
	var cur []Point
	var start Point

	flush := func() {
		if len(cur) > 1 {
			polys = append(polys, cur)
		}
		cur = nil
	}

	for _, e := range p.elements {
		switch e := e.(type) {
		case MoveTo:
			flush()
			start = e.Point
			cur = append(cur, e.Point)
		case LineTo:
			cur = append(cur, e.Point)
		case QuadTo:
			if len(cur) == 0 {
				cur = append(cur, Point{})
			}
			p0 := cur[len(cur)-1]
			flattenQuad(p0, e.Control, e.Point, tolerance, func(pt Point) {
				cur = append(cur, pt)
			})
		case CubicTo:
			if len(cur) == 0 {
				cur = append(cur, Point{})
			}
			p0 := cur[len(cur)-1]
			flattenCubic(p0, e.Control1, e.Control2, e.Point, tolerance, func(pt Point) {
				cur = append(cur, pt)
			})
		case Close:
			if len(cur) > 0 {
				cur = append(cur, start)
			}
			flush()
			cur = append(cur, start)
		}
	}
	flush()
	return polys
}

func flattenQuad(p0, p1, p2 Point, tolerance float64, emit func(Point)) {
	// Deviation of a quadratic from its chord peaks at the control point.
	d := distPointSegment(p1, p0, p2)
	if d <= tolerance {
		emit(p2)
		return
	}
	m01 := p0.Lerp(p1, 0.5)
	m12 := p1.Lerp(p2, 0.5)
	mid := m01.Lerp(m12, 0.5)
	flattenQuad(p0, m01, mid, tolerance, emit)
	flattenQuad(mid, m12, p2, tolerance, emit)
}

func flattenCubic(p0, p1, p2, p3 Point, tolerance float64, emit func(Point)) {
	d := max(distPointSegment(p1, p0, p3), distPointSegment(p2, p0, p3))
	if d <= tolerance {
		emit(p3)
		return
	}
	m01 := p0.Lerp(p1, 0.5)
	m12 := p1.Lerp(p2, 0.5)
	m23 := p2.Lerp(p3, 0.5)
	a := m01.Lerp(m12, 0.5)
	b := m12.Lerp(m23, 0.5)
	mid := a.Lerp(b, 0.5)
	flattenCubic(p0, m01, a, mid, tolerance, emit)
	flattenCubic(mid, b, m23, p3, tolerance, emit)
}

func distPointSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	lengthSq := ab.X*ab.X + ab.Y*ab.Y
	if lengthSq == 0 {
		d := p.Sub(a)
		return math.Hypot(d.X, d.Y)
	}
	ap := p.Sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / lengthSq
	t = math.Max(0, math.Min(1, t))
	proj := a.Add(ab.Mul(t))
	d := p.Sub(proj)
	return math.Hypot(d.X, d.Y)
}

// BoundingBox returns the axis-aligned bounding box of the flattened path.
// An empty path yields an empty rectangle at the origin.
func (p *Path2D) BoundingBox() Rect {
	polys := p.Flatten(flattenTolerance)
	first := true
	var minX, minY, maxX, maxY float64
	for _, poly := range polys {
		for _, pt := range poly {
			if first {
				minX, maxX = pt.X, pt.X
				minY, maxY = pt.Y, pt.Y
				first = false
				continue
			}
			minX = math.Min(minX, pt.X)
			maxX = math.Max(maxX, pt.X)
			minY = math.Min(minY, pt.Y)
			maxY = math.Max(maxY, pt.Y)
		}
	}
	if first {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Contains reports whether the point lies inside the path under the given
// fill rule. Open subpaths are treated as implicitly closed, matching the
// canvas containment model.
func (p *Path2D) Contains(pt Point, rule FillRule) bool {
	winding, crossings := p.windingAt(pt)
	if rule == FillRuleEvenOdd {
		return crossings%2 != 0
	}
	return winding != 0
}

// windingAt casts a ray in +X from pt and accumulates the signed winding
// number and the raw crossing count over all (implicitly closed) subpaths.
func (p *Path2D) windingAt(pt Point) (winding, crossings int) {
	for _, poly := range p.Flatten(flattenTolerance) {
		n := len(poly)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			a := poly[i]
			b := poly[(i+1)%n] // implicit closing edge for open subpaths
			if a.Y <= pt.Y {
				if b.Y > pt.Y && isLeft(a, b, pt) > 0 {
					winding++
					crossings++
				}
			} else {
				if b.Y <= pt.Y && isLeft(a, b, pt) < 0 {
					winding--
					crossings++
				}
			}
		}
	}
	return winding, crossings
}

// isLeft returns >0 if pt is left of the directed line a->b, <0 if right,
// 0 if collinear.
func isLeft(a, b, pt Point) float64 {
	return (b.X-a.X)*(pt.Y-a.Y) - (pt.X-a.X)*(b.Y-a.Y)
}
