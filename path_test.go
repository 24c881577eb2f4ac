package canvas

import (
	"math"
	"testing"
)

func TestPathContainsRect(t *testing.T) {
	p := RectPath(10, 10, 20, 20)
	tests := []struct {
		name string
		pt   Point
		want bool
	}{
		{"center", Pt(20, 20), true},
		{"near edge inside", Pt(10.5, 10.5), true},
		{"outside left", Pt(5, 20), false},
		{"outside below", Pt(20, 35), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, rule := range []FillRule{FillRuleNonZero, FillRuleEvenOdd} {
				if got := p.Contains(tt.pt, rule); got != tt.want {
					t.Errorf("rule %v: got %v, want %v", rule, got, tt.want)
				}
			}
		})
	}
}

func TestPathContainsSelfIntersecting(t *testing.T) {
	// Two nested rectangles wound the same way: the inner region has
	// winding 2. Nonzero keeps it filled, even-odd punches a hole.
	p := NewPath2D(func(b *Path) {
		b.Rect(0, 0, 100, 100)
		b.Rect(25, 25, 50, 50)
	})
	center := Pt(50, 50)
	if !p.Contains(center, FillRuleNonZero) {
		t.Error("nonzero: center of nested rects should be inside")
	}
	if p.Contains(center, FillRuleEvenOdd) {
		t.Error("evenodd: center of nested rects should be a hole")
	}
	ring := Pt(10, 50)
	if !p.Contains(ring, FillRuleNonZero) || !p.Contains(ring, FillRuleEvenOdd) {
		t.Error("ring region should be inside under both rules")
	}
}

func TestPathContainsOpenSubpath(t *testing.T) {
	// An unclosed triangle still contains points; the closing edge is
	// implicit.
	p := NewPath2D(func(b *Path) {
		b.MoveTo(0, 0)
		b.LineTo(100, 0)
		b.LineTo(50, 100)
	})
	if !p.Contains(Pt(50, 30), FillRuleNonZero) {
		t.Error("point inside open triangle should be contained")
	}
	if p.Contains(Pt(5, 90), FillRuleNonZero) {
		t.Error("point outside open triangle should not be contained")
	}
}

func TestPathBoundingBox(t *testing.T) {
	p := NewPath2D(func(b *Path) {
		b.MoveTo(10, 5)
		b.LineTo(40, 5)
		b.LineTo(40, 25)
		b.ClosePath()
	})
	bb := p.BoundingBox()
	want := R(10, 5, 30, 20)
	if bb != want {
		t.Errorf("got %+v, want %+v", bb, want)
	}
}

func TestPathBoundingBoxEmpty(t *testing.T) {
	p := NewPath2D(func(b *Path) {})
	if bb := p.BoundingBox(); bb != (Rect{}) {
		t.Errorf("empty path bounding box = %+v, want zero", bb)
	}
}

func TestPathFlattenCurveAccuracy(t *testing.T) {
	// A flattened quarter circle should stay within tolerance of radius.
	p := NewPath2D(func(b *Path) {
		b.Arc(0, 0, 100, 0, math.Pi/2, false)
	})
	for _, poly := range p.Flatten(0.1) {
		for _, pt := range poly {
			r := math.Hypot(pt.X, pt.Y)
			if math.Abs(r-100) > 0.5 {
				t.Fatalf("flattened point %v is %.3f from the arc", pt, math.Abs(r-100))
			}
		}
	}
}

func TestPathArcFullCircleCloses(t *testing.T) {
	p := NewPath2D(func(b *Path) {
		b.Arc(50, 50, 10, 0, 2*math.Pi, false)
	})
	if !p.Contains(Pt(50, 50), FillRuleNonZero) {
		t.Error("center of a full circle should be inside")
	}
	if p.Contains(Pt(65, 50), FillRuleNonZero) {
		t.Error("point outside the circle radius should be outside")
	}
}

func TestPathEllipseSweepClamped(t *testing.T) {
	// Sweeps beyond a full turn clamp to one revolution; the result is a
	// closed ellipse, not multiple windings.
	p := NewPath2D(func(b *Path) {
		b.Ellipse(0, 0, 20, 10, 0, 0, 10*math.Pi, false)
	})
	if !p.Contains(Pt(0, 0), FillRuleEvenOdd) {
		t.Error("center should be inside under even-odd after sweep clamping")
	}
}

func TestPathFreezeIsolation(t *testing.T) {
	b := NewPath()
	b.Rect(0, 0, 10, 10)
	frozen := b.Freeze()
	b.Rect(100, 100, 10, 10)
	if frozen.Contains(Pt(105, 105), FillRuleNonZero) {
		t.Error("mutating the builder must not affect a frozen snapshot")
	}
}

func TestPathTransformed(t *testing.T) {
	p := RectPath(0, 0, 10, 10).Transformed(Translate(100, 0))
	if !p.Contains(Pt(105, 5), FillRuleNonZero) {
		t.Error("translated rect should contain shifted point")
	}
	if p.Contains(Pt(5, 5), FillRuleNonZero) {
		t.Error("translated rect should not contain original point")
	}
}

func TestPathLineToOnEmptyStartsSubpath(t *testing.T) {
	b := NewPath()
	b.LineTo(10, 10)
	if b.IsEmpty() {
		t.Error("LineTo on an empty path should start a subpath")
	}
}

func TestEllipseNegativeRadiusAppendsNothing(t *testing.T) {
	p := NewPath2D(func(b *Path) {
		b.Ellipse(10, 10, -5, 5, 0, 0, math.Pi, false)
		b.Ellipse(10, 10, 5, -5, 0, 0, math.Pi, false)
	})
	if !p.IsEmpty() {
		t.Fatal("negative radii must append nothing")
	}
}
