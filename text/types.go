package text

import "golang.org/x/text/unicode/bidi"

// Direction specifies horizontal text direction.
type Direction int

const (
	// DirectionLTR is left-to-right text (Latin, Cyrillic, Greek).
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew).
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	if d == DirectionRTL {
		return "RTL"
	}
	return "LTR"
}

// DetectDirection resolves the dominant direction of a string from its
// first strongly directional character. Strings without one are
// left-to-right.
func DetectDirection(s string) Direction {
	var p bidi.Paragraph
	if _, err := p.SetString(s); err != nil {
		return DirectionLTR
	}
	o, err := p.Order()
	if err != nil || o.NumRuns() == 0 {
		return DirectionLTR
	}
	if o.Direction() == bidi.RightToLeft {
		return DirectionRTL
	}
	return DirectionLTR
}

// GlyphID is a glyph index within a font. The value is font-specific.
type GlyphID uint16

// Rect is an axis-aligned glyph bounding box, y-down.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the height of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Empty reports whether the rectangle is empty.
func (r Rect) Empty() bool { return r.MinX >= r.MaxX || r.MinY >= r.MaxY }
