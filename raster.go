package canvas

import (
	"image"
	"math"
)

// Scanline rasterizer. Paths are flattened to polygons in device space and
// converted to per-pixel coverage with 4x vertical supersampling and exact
// horizontal span coverage.

const rasterSubsamples = 4

var rasterOffsets = [rasterSubsamples]float64{0.125, 0.375, 0.625, 0.875}

// coverMask holds antialiased coverage for a device-space region.
// Coverage is 0 (outside) to 255 (fully covered).
type coverMask struct {
	rect image.Rectangle
	cov  []uint8
}

func (m *coverMask) at(x, y int) uint8 {
	if m == nil || !image.Pt(x, y).In(m.rect) {
		return 0
	}
	return m.cov[(y-m.rect.Min.Y)*m.rect.Dx()+(x-m.rect.Min.X)]
}

type rasterEdge struct {
	x0, y0 float64 // y0 < y1 always
	x1, y1 float64
	dir    int // +1 edge originally pointed down, -1 up
}

// rasterize converts device-space polygons to a coverage mask clipped to
// bounds. Returns nil when nothing is covered.
func rasterize(polys [][]Point, rule FillRule, bounds image.Rectangle) *coverMask {
	var edges []rasterEdge
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range polys {
		n := len(poly)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			a := poly[i]
			b := poly[(i+1)%n] // open subpaths close implicitly
			if a.Y == b.Y {
				continue
			}
			e := rasterEdge{x0: a.X, y0: a.Y, x1: b.X, y1: b.Y, dir: 1}
			if a.Y > b.Y {
				e = rasterEdge{x0: b.X, y0: b.Y, x1: a.X, y1: a.Y, dir: -1}
			}
			edges = append(edges, e)
			minX = math.Min(minX, math.Min(a.X, b.X))
			maxX = math.Max(maxX, math.Max(a.X, b.X))
			minY = math.Min(minY, math.Min(a.Y, b.Y))
			maxY = math.Max(maxY, math.Max(a.Y, b.Y))
		}
	}
	if len(edges) == 0 {
		return nil
	}

	box := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(bounds)
	if box.Empty() {
		return nil
	}

	m := &coverMask{rect: box, cov: make([]uint8, box.Dx()*box.Dy())}
	w := box.Dx()
	acc := make([]float64, w)
	var xs []crossing

	for y := box.Min.Y; y < box.Max.Y; y++ {
		for i := range acc {
			acc[i] = 0
		}
		for _, off := range rasterOffsets {
			sy := float64(y) + off
			xs = xs[:0]
			for _, e := range edges {
				if sy < e.y0 || sy >= e.y1 {
					continue
				}
				x := e.x0 + (sy-e.y0)*(e.x1-e.x0)/(e.y1-e.y0)
				xs = append(xs, crossing{x: x, dir: e.dir})
			}
			if len(xs) < 2 {
				continue
			}
			sortCrossings(xs)

			if rule == FillRuleEvenOdd {
				for i := 0; i+1 < len(xs); i += 2 {
					addSpan(acc, box.Min.X, xs[i].x, xs[i+1].x)
				}
			} else {
				winding := 0
				spanStart := 0.0
				for _, c := range xs {
					if winding == 0 {
						spanStart = c.x
					}
					winding += c.dir
					if winding == 0 {
						addSpan(acc, box.Min.X, spanStart, c.x)
					}
				}
			}
		}
		row := m.cov[(y-box.Min.Y)*w:]
		for i := 0; i < w; i++ {
			v := acc[i] * (255.0 / rasterSubsamples)
			if v <= 0 {
				continue
			}
			if v > 255 {
				v = 255
			}
			row[i] = uint8(v + 0.5)
		}
	}
	return m
}

// addSpan accumulates coverage for the horizontal span [x0, x1) into one
// subsample row. Fractional end pixels receive partial coverage.
func addSpan(acc []float64, originX int, x0, x1 float64) {
	if x1 <= x0 {
		return
	}
	x0 -= float64(originX)
	x1 -= float64(originX)
	if x1 <= 0 || x0 >= float64(len(acc)) {
		return
	}
	x0 = math.Max(x0, 0)
	x1 = math.Min(x1, float64(len(acc)))

	i0 := int(x0)
	i1 := int(x1)
	if i0 == i1 {
		acc[i0] += x1 - x0
		return
	}
	acc[i0] += float64(i0+1) - x0
	for i := i0 + 1; i < i1; i++ {
		acc[i] += 1
	}
	if i1 < len(acc) {
		acc[i1] += x1 - float64(i1)
	}
}

type crossing struct {
	x   float64
	dir int
}

// sortCrossings is an insertion sort; crossing lists per scanline are
// short enough that this beats the generic sort.
func sortCrossings(xs []crossing) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j].x < xs[j-1].x; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}
