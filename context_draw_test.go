package canvas

import (
	"image/color"
	"math"
	"testing"
)

func TestFillRectEmitsFillOp(t *testing.T) {
	c, r := recordingContext(100, 100)
	c.SetFillStyle("red")
	c.SetGlobalAlpha(0.5)
	c.FillRect(10, 10, 30, 20)

	if len(r.fills) != 1 {
		t.Fatalf("fills = %d, want 1", len(r.fills))
	}
	f := r.fills[0]
	if f.op.Alpha != 0.5 {
		t.Errorf("Alpha = %v, want 0.5", f.op.Alpha)
	}
	if f.op.Op != CompositeSourceOver {
		t.Errorf("Op = %v, want source-over", f.op.Op)
	}
	if col, ok := asSolidColor(f.op.Brush); !ok || col != (RGBA{R: 1, A: 1}) {
		t.Errorf("Brush = %+v, want solid red", f.op.Brush)
	}
	if f.op.Rule != FillRuleEvenOdd {
		t.Errorf("Rule = %v, want even-odd", f.op.Rule)
	}
	if !f.op.Path.Contains(Pt(25, 20), FillRuleNonZero) {
		t.Error("fill path should cover the rectangle interior")
	}
}

func TestFillRectNonFiniteIsNoop(t *testing.T) {
	c, r := recordingContext(100, 100)
	c.FillRect(math.NaN(), 0, 10, 10)
	c.FillRect(0, 0, math.Inf(1), 10)
	if len(r.fills) != 0 {
		t.Errorf("fills = %d, non-finite geometry must not paint", len(r.fills))
	}
}

func TestFillSkipsInvisibleBrush(t *testing.T) {
	c, r := recordingContext(100, 100)
	c.SetFillStyle("transparent")
	c.FillRect(0, 0, 10, 10)
	if len(r.fills) != 0 {
		t.Errorf("fills = %d, transparent brush must skip the paint", len(r.fills))
	}
}

func TestFillEmptyPathIsNoop(t *testing.T) {
	c, r := recordingContext(100, 100)
	c.BeginPath()
	c.Fill(FillRuleNonZero)
	if len(r.fills) != 0 {
		t.Errorf("fills = %d, empty path must not paint", len(r.fills))
	}
}

func TestFillWithRuleKeyword(t *testing.T) {
	c, r := recordingContext(50, 50)
	c.Rect(0, 0, 10, 10)
	c.FillWithRule("evenodd")
	if len(r.fills) != 1 || r.fills[0].op.Rule != FillRuleEvenOdd {
		t.Fatalf("fills = %d, rule = %v", len(r.fills), r.fills[0].op.Rule)
	}

	c.ClipWithRule("evenodd")
	c.FillRect(0, 0, 5, 5)
	if n := len(r.clips); n != 1 || r.clips[0].rule != FillRuleEvenOdd {
		t.Fatalf("clips = %d", n)
	}
}

func TestFilterPassedThroughOps(t *testing.T) {
	c, r := recordingContext(100, 100)
	c.SetFilter("blur(2px)")

	c.FillRect(0, 0, 10, 10)
	c.StrokeRect(0, 0, 10, 10)
	c.DrawImage(solidImage(4, 4, color.NRGBA{R: 255, A: 255}), 0, 0)

	if len(r.fills) != 1 || r.fills[0].op.Filter != "blur(2px)" {
		t.Errorf("fill filter = %q, want blur(2px)", r.fills[0].op.Filter)
	}
	if len(r.strokes) != 1 || r.strokes[0].op.Filter != "blur(2px)" {
		t.Errorf("stroke filter = %q, want blur(2px)", r.strokes[0].op.Filter)
	}
	if len(r.bitmaps) != 1 || r.bitmaps[0].op.Filter != "blur(2px)" {
		t.Errorf("bitmap filter = %q, want blur(2px)", r.bitmaps[0].op.Filter)
	}
}

func TestStrokeCarriesLineState(t *testing.T) {
	c, r := recordingContext(100, 100)
	c.SetStrokeStyle("blue")
	c.SetLineWidth(7)
	c.SetLineCap("round")
	c.SetLineJoin("bevel")
	c.SetMiterLimit(3)
	c.SetLineDash([]float64{6, 2})
	c.SetLineDashOffset(1)
	c.MoveTo(0, 0)
	c.LineTo(50, 50)
	c.Stroke()

	if len(r.strokes) != 1 {
		t.Fatalf("strokes = %d, want 1", len(r.strokes))
	}
	s := r.strokes[0].op
	if s.LineWidth != 7 {
		t.Errorf("LineWidth = %v", s.LineWidth)
	}
	if s.Cap != LineCapRound {
		t.Errorf("Cap = %v", s.Cap)
	}
	if s.Join != LineJoinBevel {
		t.Errorf("Join = %v", s.Join)
	}
	if s.MiterLimit != 3 {
		t.Errorf("MiterLimit = %v", s.MiterLimit)
	}
	if s.Dash == nil || s.Dash.Offset != 1 || len(s.Dash.Array) != 2 {
		t.Errorf("Dash = %+v", s.Dash)
	}
}

func TestStrokeSolidWhenNoDash(t *testing.T) {
	c, r := recordingContext(100, 100)
	c.MoveTo(0, 0)
	c.LineTo(10, 0)
	c.Stroke()
	if len(r.strokes) != 1 {
		t.Fatalf("strokes = %d", len(r.strokes))
	}
	if r.strokes[0].op.Dash != nil {
		t.Error("no dash list set, Dash should be nil")
	}
}

func TestShadowPassPaintsBeforeMain(t *testing.T) {
	c, r := recordingContext(100, 100)
	c.SetFillStyle("#0000ff")
	c.SetShadowColor("#000000")
	c.SetShadowOffsetX(5)
	c.SetShadowOffsetY(6)
	c.SetShadowBlur(4)
	c.FillRect(10, 10, 20, 20)

	if len(r.fills) != 2 {
		t.Fatalf("fills = %d, want shadow + main", len(r.fills))
	}
	shadow, main := r.fills[0], r.fills[1]
	if shadow.op.Blur != 4 {
		t.Errorf("shadow Blur = %v, want 4", shadow.op.Blur)
	}
	if main.op.Blur != 0 {
		t.Errorf("main Blur = %v, want 0", main.op.Blur)
	}
	// The shadow paints through the offset transform; the main pass does
	// not see it.
	if !matrixNear(shadow.transform, Translate(5, 6)) {
		t.Errorf("shadow transform = %+v, want offset by (5, 6)", shadow.transform)
	}
	if !matrixNear(main.transform, Identity()) {
		t.Errorf("main transform = %+v, want identity", main.transform)
	}
	if r.saves != 1 || r.restores != 1 {
		t.Errorf("saves = %d restores = %d, shadow pass must bracket itself", r.saves, r.restores)
	}
}

func TestShadowSkippedWhenInert(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *Context)
	}{
		{"no blur or offset", func(c *Context) {
			c.SetShadowColor("black")
		}},
		{"copy operator", func(c *Context) {
			c.SetShadowColor("black")
			c.SetShadowOffsetX(5)
			c.SetGlobalCompositeOperation("copy")
		}},
		{"zero effective alpha", func(c *Context) {
			c.SetShadowColor("transparent")
			c.SetFillStyle("transparent")
			c.SetShadowOffsetX(5)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, r := recordingContext(100, 100)
			c.SetFillStyle("red")
			tt.setup(c)
			c.FillRect(0, 0, 10, 10)
			for _, f := range r.fills {
				if f.op.Blur != 0 {
					t.Error("no shadow fill expected")
				}
			}
			if len(r.fills) > 1 {
				t.Errorf("fills = %d, want just the main pass", len(r.fills))
			}
		})
	}
}

func TestShadowAlphaFollowsFlatFillColor(t *testing.T) {
	// A flat fill color with alpha overrides the shadow color's own
	// alpha in the shadow pass.
	c, r := recordingContext(100, 100)
	c.SetFillStyle("#ff000080") // alpha 0x80
	c.SetShadowColor("#000000") // opaque black
	c.SetShadowOffsetX(3)
	c.FillRect(0, 0, 10, 10)

	if len(r.fills) != 2 {
		t.Fatalf("fills = %d, want 2", len(r.fills))
	}
	col, ok := asSolidColor(r.fills[0].op.Brush)
	if !ok {
		t.Fatal("shadow brush should be solid")
	}
	want := 0x80 / 255.0
	if math.Abs(col.A-want) > 1e-9 {
		t.Errorf("shadow alpha = %v, want %v", col.A, want)
	}
}

func TestClearRectBypassesState(t *testing.T) {
	c, r := recordingContext(100, 100)
	c.SetGlobalAlpha(0.1)
	c.SetGlobalCompositeOperation("xor")
	c.ClearRect(30, -10, -20, 20)

	if len(r.clears) != 1 {
		t.Fatalf("clears = %d, want 1", len(r.clears))
	}
	// Negative extents are normalized before reaching the painter.
	if got := r.clears[0]; got != R(10, -10, 20, 20) {
		t.Errorf("clear rect = %+v", got)
	}
}

func TestClipRecordedPerState(t *testing.T) {
	c, r := recordingContext(100, 100)
	c.Save()
	c.Rect(0, 0, 50, 50)
	c.Clip(FillRuleNonZero)
	c.FillRect(0, 0, 10, 10)
	if len(r.clips) == 0 {
		t.Fatal("clip should reach the painter before the fill")
	}
	c.Restore()

	r.clips = nil
	c.FillRect(0, 0, 10, 10)
	if len(r.clips) != 0 {
		t.Error("restored state must not replay the dropped clip")
	}
}

func TestClipKeepsItsTransform(t *testing.T) {
	c, r := recordingContext(100, 100)
	c.Translate(25, 0)
	c.Rect(0, 0, 10, 10)
	c.Clip(FillRuleNonZero)
	c.ResetTransform()
	c.FillRect(0, 0, 100, 100)

	if len(r.clips) != 1 {
		t.Fatalf("clips = %d, want 1", len(r.clips))
	}
	// The clip is replayed under the transform captured when it was set,
	// not the transform at fill time.
	if !matrixNear(r.clips[0].transform, Translate(25, 0)) {
		t.Errorf("clip transform = %+v, want translate(25, 0)", r.clips[0].transform)
	}
	if !matrixNear(r.fills[0].transform, Identity()) {
		t.Errorf("fill transform = %+v, want identity", r.fills[0].transform)
	}
}

func TestDrawBeforeSurfaceAllocationIsSafe(t *testing.T) {
	c := NewContext(0, 0)
	c.FillRect(0, 0, 10, 10)
	c.MoveTo(0, 0)
	c.LineTo(5, 5)
	c.Stroke()
	c.ClearRect(0, 0, 10, 10)
	if c.Surface() != nil {
		t.Error("zero-sized canvas must never allocate a surface")
	}
}
