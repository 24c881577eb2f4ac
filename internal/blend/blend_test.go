package blend

import "testing"

type pixel struct {
	r, g, b, a uint8
}

func TestPorterDuff(t *testing.T) {
	// Opaque red source over half-transparent blue destination.
	src := pixel{255, 0, 0, 255}
	dst := pixel{0, 0, 128, 128}

	tests := []struct {
		name string
		mode Mode
		want pixel
	}{
		{"clear", Clear, pixel{0, 0, 0, 0}},
		{"copy", Copy, pixel{255, 0, 0, 255}},
		{"source-over", SourceOver, pixel{255, 0, 0, 255}},
		{"destination-over", DestinationOver, pixel{127, 0, 128, 255}},
		{"source-in", SourceIn, pixel{128, 0, 0, 128}},
		{"destination-in", DestinationIn, pixel{0, 0, 128, 128}},
		{"source-out", SourceOut, pixel{127, 0, 0, 127}},
		{"destination-out", DestinationOut, pixel{0, 0, 0, 0}},
		{"source-atop", SourceAtop, pixel{128, 0, 0, 128}},
		{"destination-atop", DestinationAtop, pixel{127, 0, 128, 255}},
		{"xor", Xor, pixel{127, 0, 0, 127}},
		{"lighter", Lighter, pixel{255, 0, 128, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Get(tt.mode)
			r, g, b, a := f(src.r, src.g, src.b, src.a, dst.r, dst.g, dst.b, dst.a)
			got := pixel{r, g, b, a}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSourceOverTransparentSource(t *testing.T) {
	f := Get(SourceOver)
	r, g, b, a := f(0, 0, 0, 0, 10, 20, 30, 40)
	if (pixel{r, g, b, a}) != (pixel{10, 20, 30, 40}) {
		t.Errorf("transparent source must leave destination unchanged, got %d,%d,%d,%d", r, g, b, a)
	}
}

func TestPlusDarker(t *testing.T) {
	f := Get(PlusDarker)
	r, g, b, a := f(200, 100, 0, 255, 200, 100, 0, 255)
	if r != 145 || g != 0 || b != 0 || a != 255 {
		t.Errorf("got %d,%d,%d,%d, want 145,0,0,255", r, g, b, a)
	}
}

func TestPlusLighterClamps(t *testing.T) {
	f := Get(PlusLighter)
	r, _, _, a := f(200, 0, 0, 200, 200, 0, 0, 200)
	if r != 255 || a != 255 {
		t.Errorf("channels must saturate at 255, got r=%d a=%d", r, a)
	}
}

func TestSeparableOpaque(t *testing.T) {
	// With both pixels opaque the separable mix reduces to B(Cb, Cs).
	tests := []struct {
		name string
		mode Mode
		src  pixel
		dst  pixel
		want pixel
	}{
		{"multiply", Multiply, pixel{255, 128, 0, 255}, pixel{128, 128, 128, 255}, pixel{128, 64, 0, 255}},
		{"screen", Screen, pixel{255, 128, 0, 255}, pixel{128, 128, 128, 255}, pixel{255, 192, 128, 255}},
		{"darken", Darken, pixel{255, 0, 128, 255}, pixel{128, 128, 128, 255}, pixel{128, 0, 128, 255}},
		{"lighten", Lighten, pixel{255, 0, 128, 255}, pixel{128, 128, 128, 255}, pixel{255, 128, 128, 255}},
		{"difference", Difference, pixel{255, 0, 100, 255}, pixel{128, 128, 128, 255}, pixel{127, 128, 28, 255}},
		{"color-dodge black", ColorDodge, pixel{200, 200, 200, 255}, pixel{0, 0, 0, 255}, pixel{0, 0, 0, 255}},
		{"color-burn white", ColorBurn, pixel{200, 200, 200, 255}, pixel{255, 255, 255, 255}, pixel{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Get(tt.mode)
			r, g, b, a := f(tt.src.r, tt.src.g, tt.src.b, tt.src.a, tt.dst.r, tt.dst.g, tt.dst.b, tt.dst.a)
			got := pixel{r, g, b, a}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeparableTransparentEdges(t *testing.T) {
	f := Get(Multiply)
	if r, g, b, a := f(0, 0, 0, 0, 10, 20, 30, 40); (pixel{r, g, b, a}) != (pixel{10, 20, 30, 40}) {
		t.Error("transparent source must pass destination through")
	}
	if r, g, b, a := f(10, 20, 30, 40, 0, 0, 0, 0); (pixel{r, g, b, a}) != (pixel{10, 20, 30, 40}) {
		t.Error("transparent destination must pass source through")
	}
}

func TestNonSeparable(t *testing.T) {
	// Luminosity of pure red over pure green keeps green's hue with
	// red's luminosity; color of red over gray turns the pixel red.
	tests := []struct {
		name string
		mode Mode
	}{
		{"hue", Hue},
		{"saturation", Saturation},
		{"color", Color},
		{"luminosity", Luminosity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Get(tt.mode)
			_, _, _, a := f(255, 0, 0, 255, 0, 255, 0, 255)
			if a != 255 {
				t.Errorf("opaque in, opaque out: alpha = %d", a)
			}
		})
	}

	f := Get(Color)
	r, g, b, _ := f(255, 0, 0, 255, 128, 128, 128, 255)
	if r <= g || r <= b {
		t.Errorf("color blend of red over gray should be reddish, got %d,%d,%d", r, g, b)
	}

	f = Get(Luminosity)
	r, g, b, _ = f(255, 255, 255, 255, 128, 0, 0, 255)
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("white luminosity forces white, got %d,%d,%d", r, g, b)
	}
}

func TestUnbounded(t *testing.T) {
	unbounded := []Mode{Clear, Copy, SourceIn, DestinationIn, SourceOut, DestinationAtop}
	for _, m := range unbounded {
		if !Unbounded(m) {
			t.Errorf("mode %d should be unbounded", m)
		}
	}
	bounded := []Mode{Normal, SourceOver, DestinationOver, DestinationOut, SourceAtop, Xor, Lighter, Multiply}
	for _, m := range bounded {
		if Unbounded(m) {
			t.Errorf("mode %d should be bounded", m)
		}
	}
}

func TestMathHelpers(t *testing.T) {
	for _, tt := range []struct {
		a, b, want uint8
	}{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{128, 128, 64},
		{255, 128, 128},
	} {
		if got := mulDiv255(tt.a, tt.b); got != tt.want {
			t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
	if unmul255(128, 128) != 255 {
		t.Errorf("unmul255(128, 128) = %d, want 255", unmul255(128, 128))
	}
	if unmul255(0, 0) != 0 {
		t.Error("unmul255 with zero alpha must return 0")
	}
	if addSub255(200, 100) != 45 {
		t.Errorf("addSub255(200, 100) = %d, want 45", addSub255(200, 100))
	}
	if addSub255(100, 100) != 0 {
		t.Errorf("addSub255(100, 100) = %d, want 0", addSub255(100, 100))
	}
}
