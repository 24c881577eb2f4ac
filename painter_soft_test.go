package canvas

import (
	"math"
	"testing"
)

func pixelAt(t *testing.T, c *Context, x, y int) [4]uint8 {
	t.Helper()
	d, err := c.GetImageData(x, y, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	var px [4]uint8
	copy(px[:], d.Data())
	return px
}

func TestSoftFillRect(t *testing.T) {
	c := NewContext(20, 20)
	c.SetFillStyle("red")
	c.FillRect(4, 4, 8, 8)

	if px := pixelAt(t, c, 8, 8); px != [4]uint8{255, 0, 0, 255} {
		t.Errorf("inside = %v, want opaque red", px)
	}
	if px := pixelAt(t, c, 1, 1); px != [4]uint8{0, 0, 0, 0} {
		t.Errorf("outside = %v, want transparent", px)
	}
}

func TestSoftFillRespectsTransform(t *testing.T) {
	c := NewContext(40, 40)
	c.Translate(20, 0)
	c.Scale(2, 2)
	c.SetFillStyle("lime")
	c.FillRect(0, 0, 5, 5) // device 20..30 x 0..10

	if px := pixelAt(t, c, 25, 5); px[1] != 255 {
		t.Errorf("transformed fill missing at (25, 5): %v", px)
	}
	if px := pixelAt(t, c, 10, 5); px[3] != 0 {
		t.Errorf("pixel left of the transformed rect should be empty: %v", px)
	}
}

func TestSoftGlobalAlphaBlends(t *testing.T) {
	c := NewContext(10, 10)
	c.SetFillStyle("red")
	c.SetGlobalAlpha(0.5)
	c.FillRect(0, 0, 10, 10)

	px := pixelAt(t, c, 5, 5)
	if px[3] < 124 || px[3] > 131 {
		t.Errorf("alpha = %d, want about 128", px[3])
	}
	if px[0] != 255 {
		t.Errorf("red = %d, unpremultiplied readback should stay 255", px[0])
	}
}

func TestSoftClipRestrictsPainting(t *testing.T) {
	c := NewContext(20, 20)
	c.Rect(0, 0, 10, 20)
	c.Clip(FillRuleNonZero)
	c.SetFillStyle("blue")
	c.FillRect(0, 0, 20, 20)

	if px := pixelAt(t, c, 5, 10); px[2] != 255 {
		t.Errorf("inside clip = %v, want blue", px)
	}
	if px := pixelAt(t, c, 15, 10); px[3] != 0 {
		t.Errorf("outside clip = %v, want untouched", px)
	}
}

func TestSoftClipIntersects(t *testing.T) {
	c := NewContext(20, 20)
	c.Rect(0, 0, 10, 20)
	c.Clip(FillRuleNonZero)
	c.BeginPath()
	c.Rect(0, 0, 20, 10)
	c.Clip(FillRuleNonZero)
	c.SetFillStyle("red")
	c.FillRect(0, 0, 20, 20)

	if px := pixelAt(t, c, 5, 5); px[0] != 255 {
		t.Errorf("intersection = %v, want red", px)
	}
	if px := pixelAt(t, c, 5, 15); px[3] != 0 {
		t.Errorf("only-first-clip region = %v, want empty", px)
	}
	if px := pixelAt(t, c, 15, 5); px[3] != 0 {
		t.Errorf("only-second-clip region = %v, want empty", px)
	}
}

func TestSoftClipLiftsOnRestore(t *testing.T) {
	c := NewContext(20, 20)
	c.Save()
	c.Rect(0, 0, 5, 5)
	c.Clip(FillRuleNonZero)
	c.Restore()
	c.SetFillStyle("red")
	c.FillRect(0, 0, 20, 20)

	if px := pixelAt(t, c, 15, 15); px[0] != 255 {
		t.Errorf("after restore the clip is gone, got %v", px)
	}
}

func TestSoftCompositeXor(t *testing.T) {
	c := NewContext(20, 20)
	c.SetFillStyle("red")
	c.FillRect(0, 0, 10, 10)
	c.SetGlobalCompositeOperation("xor")
	c.SetFillStyle("blue")
	c.FillRect(5, 5, 10, 10)

	// Overlap cancels, exclusive regions keep their color.
	if px := pixelAt(t, c, 7, 7); px[3] != 0 {
		t.Errorf("overlap = %v, want transparent", px)
	}
	if px := pixelAt(t, c, 2, 2); px[0] != 255 || px[3] != 255 {
		t.Errorf("red-only region = %v", px)
	}
	if px := pixelAt(t, c, 12, 12); px[2] != 255 || px[3] != 255 {
		t.Errorf("blue-only region = %v", px)
	}
}

func TestSoftCompositeDestinationIn(t *testing.T) {
	c := NewContext(20, 20)
	c.SetFillStyle("red")
	c.FillRect(0, 0, 10, 10)
	c.SetGlobalCompositeOperation("destination-in")
	c.SetFillStyle("white")
	c.FillRect(5, 5, 20, 20)

	// destination-in keeps destination only under the source, and clears
	// the rest of the surface.
	if px := pixelAt(t, c, 7, 7); px[0] != 255 || px[3] != 255 {
		t.Errorf("kept region = %v, want red", px)
	}
	if px := pixelAt(t, c, 2, 2); px[3] != 0 {
		t.Errorf("destination outside source = %v, must be cleared", px)
	}
}

func TestSoftCompositeCopyClearsOutside(t *testing.T) {
	c := NewContext(10, 10)
	c.SetFillStyle("red")
	c.FillRect(0, 0, 10, 10)
	c.SetGlobalCompositeOperation("copy")
	c.SetFillStyle("blue")
	c.FillRect(0, 0, 3, 3)

	if px := pixelAt(t, c, 1, 1); px[2] != 255 {
		t.Errorf("copied region = %v, want blue", px)
	}
	if px := pixelAt(t, c, 8, 8); px[3] != 0 {
		t.Errorf("outside copy source = %v, must be cleared", px)
	}
}

func TestSoftStrokePixels(t *testing.T) {
	c := NewContext(20, 20)
	c.SetStrokeStyle("red")
	c.SetLineWidth(4)
	c.MoveTo(2, 10)
	c.LineTo(18, 10)
	c.Stroke()

	if px := pixelAt(t, c, 10, 10); px[0] != 255 {
		t.Errorf("on the line = %v, want red", px)
	}
	if px := pixelAt(t, c, 10, 3); px[3] != 0 {
		t.Errorf("away from the line = %v, want empty", px)
	}
}

func TestSoftStrokeWidthScalesWithTransform(t *testing.T) {
	c := NewContext(40, 40)
	c.Scale(4, 4)
	c.SetStrokeStyle("red")
	c.SetLineWidth(2) // 8 device pixels
	c.MoveTo(0, 5)
	c.LineTo(10, 5)
	c.Stroke()

	// Device line runs along y=20 with half-width 4.
	if px := pixelAt(t, c, 20, 17); px[0] != 255 {
		t.Errorf("inside scaled stroke = %v", px)
	}
	if px := pixelAt(t, c, 20, 10); px[3] != 0 {
		t.Errorf("outside scaled stroke = %v", px)
	}
}

func TestSoftShadowPixels(t *testing.T) {
	c := NewContext(30, 30)
	c.SetFillStyle("red")
	c.SetShadowColor("blue")
	c.SetShadowOffsetX(10)
	c.SetShadowOffsetY(10)
	c.FillRect(2, 2, 8, 8)

	// Shape paints over its own shadow where they overlap; here they
	// don't, so both are visible.
	if px := pixelAt(t, c, 6, 6); px[0] != 255 {
		t.Errorf("shape = %v, want red", px)
	}
	if px := pixelAt(t, c, 16, 16); px[2] != 255 {
		t.Errorf("shadow = %v, want blue", px)
	}
}

func TestSoftShadowBlurSpreads(t *testing.T) {
	c := NewContext(40, 40)
	c.SetFillStyle("black")
	c.SetShadowColor("black")
	c.SetShadowOffsetX(15)
	c.SetShadowBlur(6)
	c.FillRect(5, 15, 10, 10)

	// A blurred shadow has soft alpha just outside the offset rectangle.
	edge := pixelAt(t, c, 32, 20)
	if edge[3] == 0 || edge[3] == 255 {
		t.Errorf("blurred shadow edge alpha = %d, want partial", edge[3])
	}
}

func TestSoftLinearGradientFill(t *testing.T) {
	c := NewContext(20, 20)
	g := NewLinearGradient(0, 0, 20, 0)
	g.AddColorStop(0, RGBA{R: 1, A: 1})
	g.AddColorStop(1, RGBA{B: 1, A: 1})
	c.SetFillBrush(g)
	c.FillRect(0, 0, 20, 20)

	left := pixelAt(t, c, 1, 10)
	right := pixelAt(t, c, 18, 10)
	if left[0] < 200 || left[2] > 55 {
		t.Errorf("left edge = %v, want mostly red", left)
	}
	if right[2] < 200 || right[0] > 55 {
		t.Errorf("right edge = %v, want mostly blue", right)
	}
}

func TestSoftClearRectRotated(t *testing.T) {
	c := NewContext(20, 20)
	c.SetFillStyle("red")
	c.FillRect(0, 0, 20, 20)
	c.Rotate(math.Pi / 4)
	c.ClearRect(5, -5, 10, 10)

	// The cleared area is the rotated rectangle, not its bounding box.
	if px := pixelAt(t, c, 7, 1); px[3] != 0 {
		t.Errorf("inside rotated clear = %v, want transparent", px)
	}
	if px := pixelAt(t, c, 1, 18); px[0] != 255 {
		t.Errorf("outside rotated clear = %v, want red", px)
	}
}

func TestSoftPainterSaveRestore(t *testing.T) {
	s, err := NewSurface(10, 10, FormatAlpha)
	if err != nil {
		t.Fatal(err)
	}
	p := NewSoftPainter(s)
	p.SetTransform(Translate(3, 0))
	p.Save()
	p.SetTransform(Scale(9, 9))
	p.Restore()
	if !matrixNear(p.state.transform, Translate(3, 0)) {
		t.Errorf("transform = %+v after restore", p.state.transform)
	}
	p.Restore() // empty stack: no-op
	p.Reset()
	if !p.state.transform.IsIdentity() {
		t.Error("reset should restore identity")
	}
}
