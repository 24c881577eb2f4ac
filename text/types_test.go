package text

import "testing"

func TestDetectDirection(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Direction
	}{
		{"latin", "hello", DirectionLTR},
		{"empty", "", DirectionLTR},
		{"digits only", "1234", DirectionLTR},
		{"hebrew", "שלום", DirectionRTL},
		{"arabic", "مرحبا", DirectionRTL},
		{"leading neutral then hebrew", "... שלום", DirectionRTL},
		{"latin then hebrew", "abc שלום", DirectionLTR},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDirection(tt.in); got != tt.want {
				t.Errorf("DetectDirection(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	if got := DirectionLTR.String(); got != "LTR" {
		t.Errorf("DirectionLTR.String() = %q", got)
	}
	if got := DirectionRTL.String(); got != "RTL" {
		t.Errorf("DirectionRTL.String() = %q", got)
	}
}

func TestRect(t *testing.T) {
	r := Rect{MinX: 1, MinY: 2, MaxX: 5, MaxY: 4}
	if r.Width() != 4 {
		t.Errorf("Width = %v", r.Width())
	}
	if r.Height() != 2 {
		t.Errorf("Height = %v", r.Height())
	}
	if r.Empty() {
		t.Error("non-degenerate rect reported empty")
	}
	if !(Rect{}).Empty() {
		t.Error("zero rect should be empty")
	}
	if !(Rect{MinX: 3, MaxX: 3, MinY: 0, MaxY: 1}).Empty() {
		t.Error("zero-width rect should be empty")
	}
}

func TestMetricsLineHeight(t *testing.T) {
	m := Metrics{Ascent: 10, Descent: 3, LineGap: 2}
	if got := m.LineHeight(); got != 15 {
		t.Errorf("LineHeight = %v, want 15", got)
	}
}
