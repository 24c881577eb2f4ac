package canvas

import "math"

// Stroke expansion. A flattened path becomes a set of fill polygons: one
// quad per segment plus cap and join geometry, all wound counterclockwise
// so the nonzero rule unions them.

const roundSteps = 16

// strokePolys expands flattened subpaths into fill polygons. Geometry is
// produced in the path's own space so line width scales with the
// transform applied afterwards.
func strokePolys(polys [][]Point, width float64, lineCap LineCap, join LineJoin, miterLimit float64, dash *Dash) [][]Point {
	if width <= 0 || !isFinite(width) {
		return nil
	}
	half := width / 2

	var out [][]Point
	for _, poly := range polys {
		pts, closed := cleanPolyline(poly)
		if len(pts) == 0 {
			continue
		}
		if len(pts) == 1 {
			// Degenerate subpath: only round and square caps mark it.
			if !dash.IsDashed() {
				out = appendDot(out, pts[0], half, lineCap)
			}
			continue
		}
		if dash.IsDashed() {
			if closed {
				pts = append(pts, pts[0])
			}
			for _, piece := range dashPolyline(pts, dash.effectiveArray(), dash.NormalizedOffset()) {
				out = strokeOpenPolyline(out, piece, half, lineCap, join, miterLimit)
			}
			continue
		}
		if closed {
			out = strokeClosedPolyline(out, pts, half, join, miterLimit)
		} else {
			out = strokeOpenPolyline(out, pts, half, lineCap, join, miterLimit)
		}
	}
	return out
}

// cleanPolyline drops consecutive duplicate points and reports whether the
// subpath is closed (last point repeats the first).
func cleanPolyline(poly []Point) ([]Point, bool) {
	var pts []Point
	for _, p := range poly {
		if len(pts) > 0 && p == pts[len(pts)-1] {
			continue
		}
		pts = append(pts, p)
	}
	closed := false
	if len(pts) > 2 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
		closed = true
	}
	return pts, closed
}

func strokeOpenPolyline(out [][]Point, pts []Point, half float64, lineCap LineCap, join LineJoin, miterLimit float64) [][]Point {
	if len(pts) < 2 {
		if len(pts) == 1 {
			out = appendDot(out, pts[0], half, lineCap)
		}
		return out
	}
	for i := 0; i+1 < len(pts); i++ {
		out = appendQuad(out, pts[i], pts[i+1], half)
	}
	for i := 1; i+1 < len(pts); i++ {
		out = appendJoin(out, pts[i-1], pts[i], pts[i+1], half, join, miterLimit)
	}
	out = appendCap(out, pts[0], pts[1], half, lineCap)
	out = appendCap(out, pts[len(pts)-1], pts[len(pts)-2], half, lineCap)
	return out
}

func strokeClosedPolyline(out [][]Point, pts []Point, half float64, join LineJoin, miterLimit float64) [][]Point {
	n := len(pts)
	for i := 0; i < n; i++ {
		out = appendQuad(out, pts[i], pts[(i+1)%n], half)
	}
	for i := 0; i < n; i++ {
		out = appendJoin(out, pts[(i+n-1)%n], pts[i], pts[(i+1)%n], half, join, miterLimit)
	}
	return out
}

// appendQuad adds the segment body: a rectangle of width 2*half along a-b.
func appendQuad(out [][]Point, a, b Point, half float64) [][]Point {
	d, ok := unitVector(b.Sub(a))
	if !ok {
		return out
	}
	n := Pt(-d.Y*half, d.X*half)
	return append(out, ccw([]Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}))
}

// appendCap adds end-cap geometry at p. away points from the second point
// of the end segment toward p, extended outward.
func appendCap(out [][]Point, p, inner Point, half float64, lineCap LineCap) [][]Point {
	switch lineCap {
	case LineCapButt:
		return out
	case LineCapRound:
		return append(out, circlePoly(p, half))
	}
	d, ok := unitVector(p.Sub(inner))
	if !ok {
		return out
	}
	n := Pt(-d.Y*half, d.X*half)
	e := p.Add(d.Mul(half))
	return append(out, ccw([]Point{p.Add(n), e.Add(n), e.Sub(n), p.Sub(n)}))
}

func appendJoin(out [][]Point, prev, joint, next Point, half float64, join LineJoin, miterLimit float64) [][]Point {
	d1, ok1 := unitVector(joint.Sub(prev))
	d2, ok2 := unitVector(next.Sub(joint))
	if !ok1 || !ok2 {
		return out
	}
	cross := d1.X*d2.Y - d1.Y*d2.X
	if cross == 0 {
		return out
	}
	if join == LineJoinRound {
		return append(out, circlePoly(joint, half))
	}

	// Outer side of the turn.
	s := 1.0
	if cross > 0 {
		s = -1
	}
	n1 := Pt(-d1.Y*half*s, d1.X*half*s)
	n2 := Pt(-d2.Y*half*s, d2.X*half*s)
	o1 := joint.Add(n1)
	o2 := joint.Add(n2)

	if join == LineJoinMiter {
		dot := d1.X*d2.X + d1.Y*d2.Y
		if dot > -1+1e-9 {
			mv := n1.Add(n2).Mul(1 / (1 + dot))
			ratio := math.Hypot(mv.X, mv.Y) / half
			if ratio <= miterLimit {
				return append(out, ccw([]Point{joint, o1, joint.Add(mv), o2}))
			}
		}
		// Falls through to bevel when the miter length exceeds the limit.
	}
	return append(out, ccw([]Point{joint, o1, o2}))
}

func appendDot(out [][]Point, p Point, half float64, lineCap LineCap) [][]Point {
	switch lineCap {
	case LineCapRound:
		return append(out, circlePoly(p, half))
	case LineCapSquare:
		return append(out, []Point{
			Pt(p.X-half, p.Y-half), Pt(p.X+half, p.Y-half),
			Pt(p.X+half, p.Y+half), Pt(p.X-half, p.Y+half),
		})
	}
	return out
}

func circlePoly(c Point, r float64) []Point {
	pts := make([]Point, roundSteps)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / roundSteps
		pts[i] = Pt(c.X+r*math.Cos(a), c.Y+r*math.Sin(a))
	}
	return pts
}

func unitVector(v Point) (Point, bool) {
	l := math.Hypot(v.X, v.Y)
	if l == 0 || !isFinite(l) {
		return Point{}, false
	}
	return Pt(v.X/l, v.Y/l), true
}

// ccw normalizes polygon winding so overlapping stroke pieces accumulate
// instead of cancelling under the nonzero rule.
func ccw(poly []Point) []Point {
	var area float64
	n := len(poly)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	if area < 0 {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	return poly
}

// dashPolyline splits an open polyline into the "on" pieces of the dash
// pattern. arr has even length; offset is normalized into one cycle.
func dashPolyline(pts []Point, arr []float64, offset float64) [][]Point {
	if len(arr) == 0 {
		return [][]Point{pts}
	}

	// Position the pattern cursor at the starting offset.
	idx := 0
	remaining := arr[0]
	for offset > 0 {
		if offset < remaining {
			remaining -= offset
			break
		}
		offset -= remaining
		idx = (idx + 1) % len(arr)
		remaining = arr[idx]
	}
	on := idx%2 == 0

	var pieces [][]Point
	var cur []Point
	flushPiece := func() {
		if len(cur) > 1 {
			pieces = append(pieces, cur)
		}
		cur = nil
	}

	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		segLen := math.Hypot(b.X-a.X, b.Y-a.Y)
		pos := 0.0
		if on && len(cur) == 0 {
			cur = append(cur, a)
		}
		for segLen-pos > remaining {
			pos += remaining
			t := pos / segLen
			split := a.Lerp(b, t)
			if on {
				cur = append(cur, split)
				flushPiece()
			} else {
				cur = []Point{split}
			}
			on = !on
			idx = (idx + 1) % len(arr)
			remaining = arr[idx]
			// Zero-length pattern entries toggle without advancing.
		}
		remaining -= segLen - pos
		if on {
			cur = append(cur, b)
		}
	}
	flushPiece()
	return pieces
}
