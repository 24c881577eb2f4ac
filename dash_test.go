package canvas

import (
	"math"
	"testing"
)

func TestNewDash(t *testing.T) {
	tests := []struct {
		name     string
		lengths  []float64
		wantNil  bool
		wantLen  float64 // pattern length, checked when non-nil
		isDashed bool
	}{
		{"empty means solid", nil, true, 0, false},
		{"all zero means solid", []float64{0, 0}, true, 0, false},
		{"pair", []float64{5, 3}, false, 8, true},
		{"odd length doubles", []float64{5}, false, 10, true},
		{"triple doubles", []float64{4, 2, 1}, false, 14, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDash(tt.lengths...)
			if (d == nil) != tt.wantNil {
				t.Fatalf("NewDash(%v) nil = %v, want %v", tt.lengths, d == nil, tt.wantNil)
			}
			if d == nil {
				return
			}
			if got := d.PatternLength(); got != tt.wantLen {
				t.Errorf("PatternLength = %v, want %v", got, tt.wantLen)
			}
			if d.IsDashed() != tt.isDashed {
				t.Errorf("IsDashed = %v", d.IsDashed())
			}
		})
	}
}

func TestValidDashSegments(t *testing.T) {
	if validDashSegments([]float64{1, -1}) {
		t.Error("negative segment should invalidate the list")
	}
	if validDashSegments([]float64{1, math.NaN()}) {
		t.Error("NaN segment should invalidate the list")
	}
	if validDashSegments([]float64{1, math.Inf(1)}) {
		t.Error("Inf segment should invalidate the list")
	}
	if !validDashSegments(nil) {
		t.Error("empty list is valid")
	}
	if !validDashSegments([]float64{0, 2}) {
		t.Error("zero segments are valid")
	}
}

func TestDashNormalizedOffset(t *testing.T) {
	d := NewDash(5, 3).WithOffset(-2)
	if got := d.NormalizedOffset(); got != 6 {
		t.Errorf("offset -2 in cycle 8 should wrap to 6, got %v", got)
	}
	d = NewDash(5, 3).WithOffset(19)
	if got := d.NormalizedOffset(); got != 3 {
		t.Errorf("offset 19 in cycle 8 should wrap to 3, got %v", got)
	}
}

func TestDashEffectiveArray(t *testing.T) {
	d := NewDash(4, 2, 1)
	arr := d.effectiveArray()
	want := []float64{4, 2, 1, 4, 2, 1}
	if len(arr) != len(want) {
		t.Fatalf("len = %d, want %d", len(arr), len(want))
	}
	for i := range want {
		if arr[i] != want[i] {
			t.Errorf("arr[%d] = %v, want %v", i, arr[i], want[i])
		}
	}
}

func TestDashClone(t *testing.T) {
	d := NewDash(5, 3).WithOffset(1)
	cl := d.Clone()
	cl.Array[0] = 99
	if d.Array[0] != 5 {
		t.Error("clone must not share the segment array")
	}
}
