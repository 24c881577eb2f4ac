package canvas

import (
	"math"
	"testing"

	"github.com/me-it-is/ladybird/text"
)

func TestTextLimit(t *testing.T) {
	tests := []struct {
		name      string
		x, y      float64
		maxWidth  []float64
		wantLimit float64
		wantHas   bool
		wantOK    bool
	}{
		{"no max width", 10, 20, nil, 0, false, true},
		{"with max width", 10, 20, []float64{50}, 50, true, true},
		{"nan x", math.NaN(), 20, nil, 0, false, false},
		{"inf y", 10, math.Inf(1), nil, 0, false, false},
		{"nan max width", 10, 20, []float64{math.NaN()}, 0, false, false},
		{"inf max width", 10, 20, []float64{math.Inf(-1)}, 0, false, false},
		{"zero max width passes through", 10, 20, []float64{0}, 0, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, has, ok := textLimit(tt.x, tt.y, tt.maxWidth)
			if limit != tt.wantLimit || has != tt.wantHas || ok != tt.wantOK {
				t.Fatalf("textLimit = (%v, %v, %v), want (%v, %v, %v)",
					limit, has, ok, tt.wantLimit, tt.wantHas, tt.wantOK)
			}
		})
	}
}

func TestFillTextWithoutFace(t *testing.T) {
	c, rec := recordingContext(100, 100)

	c.FillText("hello", 10, 50)
	c.StrokeText("hello", 10, 50)

	if len(rec.fills) != 0 || len(rec.strokes) != 0 {
		t.Fatalf("text without a configured face emitted %d fills, %d strokes",
			len(rec.fills), len(rec.strokes))
	}
}

func TestMeasureTextWithoutFace(t *testing.T) {
	c := NewContext(100, 100)

	if got := c.MeasureText("hello"); got != (TextMetrics{}) {
		t.Fatalf("MeasureText without a face = %+v, want zero metrics", got)
	}
}

func TestPrepareTextRejectsLimit(t *testing.T) {
	c := NewContext(100, 100)

	for _, limit := range []float64{0, -5, math.NaN()} {
		if _, ok := c.prepareText("x", limit, true); ok {
			t.Errorf("prepareText accepted maxWidth %v", limit)
		}
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello world", "hello world"},
		{"a\tb", "a b"},
		{"a\nb", "a b"},
		{"a\fb", "a b"},
		{"a\rb", "a b"},
		{"\t\r\n", "   "},
		{"", ""},
		{"nospace", "nospace"},
	}
	for _, tt := range tests {
		if got := collapseWhitespace(tt.in); got != tt.want {
			t.Errorf("collapseWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveDirection(t *testing.T) {
	c := NewContext(100, 100)

	c.SetDirection("ltr")
	if got := c.resolveDirection("שלום"); got != text.DirectionLTR {
		t.Errorf("explicit ltr: got %v", got)
	}

	c.SetDirection("rtl")
	if got := c.resolveDirection("hello"); got != text.DirectionRTL {
		t.Errorf("explicit rtl: got %v", got)
	}

	c.SetDirection("inherit")
	if got := c.resolveDirection("hello"); got != text.DirectionLTR {
		t.Errorf("inherit latin: got %v", got)
	}
	if got := c.resolveDirection("שלום"); got != text.DirectionRTL {
		t.Errorf("inherit hebrew: got %v", got)
	}
}

func TestAppendOutline(t *testing.T) {
	outline := text.GlyphOutline{
		Segments: []text.OutlineSegment{
			{Op: text.OutlineOpMoveTo, Points: [3]text.OutlinePoint{{X: 0, Y: 0}}},
			{Op: text.OutlineOpLineTo, Points: [3]text.OutlinePoint{{X: 4, Y: 0}}},
			{Op: text.OutlineOpQuadTo, Points: [3]text.OutlinePoint{{X: 4, Y: -4}, {X: 0, Y: -4}}},
			{Op: text.OutlineOpCubicTo, Points: [3]text.OutlinePoint{{X: -1, Y: -2}, {X: -1, Y: -1}, {X: 0, Y: 0}}},
		},
	}

	p := NewPath2D(func(b *Path) {
		appendOutline(b, outline, 10, 20)
	})

	box := p.BoundingBox()
	if box == (Rect{}) {
		t.Fatal("outline path has no bounding box")
	}
	// Anchor points shift by (10, 20); curves are interpolated so the box
	// at least spans the on-curve points.
	if box.X > 10 || box.X+box.W < 14 || box.Y > 16 || box.Y+box.H < 20 {
		t.Fatalf("outline bounding box = %+v", box)
	}
}

func TestGlyphOutlineIsEmpty(t *testing.T) {
	if !(text.GlyphOutline{}).IsEmpty() {
		t.Error("zero outline should be empty")
	}
	o := text.GlyphOutline{Segments: make([]text.OutlineSegment, 1)}
	if o.IsEmpty() {
		t.Error("outline with segments should not be empty")
	}
}
