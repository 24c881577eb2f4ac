package canvas

import "math"

// Dash is a stroke dash pattern: alternating dash and gap lengths plus a
// starting offset into the pattern cycle.
type Dash struct {
	// Array contains alternating dash/gap lengths. An odd-length array is
	// logically duplicated to form an even pattern ([5] acts as [5, 5]).
	Array []float64

	// Offset is the starting offset into the pattern cycle.
	Offset float64
}

// NewDash builds a dash pattern from alternating dash/gap lengths. Returns
// nil if no segments are given or every segment is zero, which both mean a
// solid line.
func NewDash(lengths ...float64) *Dash {
	d := &Dash{Array: lengths}
	if !d.IsDashed() {
		return nil
	}
	arr := make([]float64, len(lengths))
	copy(arr, lengths)
	return &Dash{Array: arr}
}

// validDashSegments reports whether every segment is finite and
// non-negative. Patterns with an invalid segment are rejected wholesale.
func validDashSegments(segments []float64) bool {
	for _, s := range segments {
		if s < 0 || !isFinite(s) {
			return false
		}
	}
	return true
}

// WithOffset returns a copy of d with the given offset.
func (d *Dash) WithOffset(offset float64) *Dash {
	if d == nil {
		return nil
	}
	return &Dash{Array: d.Array, Offset: offset}
}

// PatternLength returns the total length of one complete pattern cycle,
// accounting for odd-length duplication.
func (d *Dash) PatternLength() float64 {
	if d == nil {
		return 0
	}
	var total float64
	for _, l := range d.Array {
		total += l
	}
	if len(d.Array)%2 != 0 {
		total *= 2
	}
	return total
}

// IsDashed reports whether the pattern produces a dashed line. A nil Dash,
// an empty array, or an all-zero array all stroke solid.
func (d *Dash) IsDashed() bool {
	if d == nil {
		return false
	}
	for _, l := range d.Array {
		if l > 0 {
			return true
		}
	}
	return false
}

// Clone deep-copies the pattern.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}
	arr := make([]float64, len(d.Array))
	copy(arr, d.Array)
	return &Dash{Array: arr, Offset: d.Offset}
}

// NormalizedOffset returns the offset wrapped into [0, PatternLength).
func (d *Dash) NormalizedOffset() float64 {
	patternLen := d.PatternLength()
	if patternLen <= 0 {
		return 0
	}
	offset := math.Mod(d.Offset, patternLen)
	if offset < 0 {
		offset += patternLen
	}
	return offset
}

// effectiveArray returns the array with odd-length arrays duplicated, for
// pattern iteration.
func (d *Dash) effectiveArray() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	result := make([]float64, len(d.Array)*2)
	copy(result, d.Array)
	copy(result[len(d.Array):], d.Array)
	return result
}
