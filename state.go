package canvas

// TextAlign controls horizontal anchoring of drawn text relative to the
// anchor point.
type TextAlign int

const (
	AlignStart TextAlign = iota
	AlignEnd
	AlignLeft
	AlignRight
	AlignCenter
)

var textAlignNames = []string{"start", "end", "left", "right", "center"}

func (a TextAlign) String() string { return textAlignNames[a] }

// ParseTextAlign maps a keyword to its TextAlign. Unknown keywords report
// ok=false and callers leave the current value unchanged.
func ParseTextAlign(s string) (TextAlign, bool) {
	for i, name := range textAlignNames {
		if s == name {
			return TextAlign(i), true
		}
	}
	return AlignStart, false
}

// TextBaseline controls vertical anchoring of drawn text relative to the
// anchor point.
type TextBaseline int

const (
	BaselineAlphabetic TextBaseline = iota
	BaselineTop
	BaselineHanging
	BaselineMiddle
	BaselineIdeographic
	BaselineBottom
)

var textBaselineNames = []string{"alphabetic", "top", "hanging", "middle", "ideographic", "bottom"}

func (b TextBaseline) String() string { return textBaselineNames[b] }

// ParseTextBaseline maps a keyword to its TextBaseline.
func ParseTextBaseline(s string) (TextBaseline, bool) {
	for i, name := range textBaselineNames {
		if s == name {
			return TextBaseline(i), true
		}
	}
	return BaselineAlphabetic, false
}

// Direction is the base text direction.
type Direction int

const (
	// DirectionInherit resolves against the text content: the first
	// strongly directional character decides, defaulting to left-to-right.
	DirectionInherit Direction = iota
	DirectionLTR
	DirectionRTL
)

var directionNames = []string{"inherit", "ltr", "rtl"}

func (d Direction) String() string { return directionNames[d] }

// ParseDirection maps a keyword to its Direction.
func ParseDirection(s string) (Direction, bool) {
	for i, name := range directionNames {
		if s == name {
			return Direction(i), true
		}
	}
	return DirectionInherit, false
}

// State is one entry of the drawing-state stack. Every field that save and
// restore cover lives here; the current path and the bitmap contents are
// deliberately not part of it.
type State struct {
	Transform Matrix

	FillBrush   Brush
	FillStyle   string // last accepted style string, for the getter
	StrokeBrush Brush
	StrokeStyle string

	GlobalAlpha float64
	CompositeOp CompositeOp

	// Filter is the raw filter descriptor threaded through every paint
	// call. Empty means no filter ("none").
	Filter string

	LineWidth  float64
	LineCap    LineCap
	LineJoin   LineJoin
	MiterLimit float64
	DashList   []float64
	DashOffset float64

	ShadowOffsetX float64
	ShadowOffsetY float64
	ShadowBlur    float64
	ShadowColor   RGBA

	Font         string
	FontSize     float64
	TextAlign    TextAlign
	TextBaseline TextBaseline
	Direction    Direction

	ImageSmoothingEnabled bool
	ImageSmoothingQuality SmoothingQuality

	// Clips are the accumulated clip intersections, oldest first. Each
	// entry keeps the transform that was current when the clip was set.
	Clips []clipEntry
}

// clipEntry is one clip intersection: a user-space path, its fill rule and
// the transform in effect when it was applied.
type clipEntry struct {
	Path      *Path2D
	Rule      FillRule
	Transform Matrix
}

// defaultState returns a fresh drawing state with every attribute at its
// initial value.
func defaultState() State {
	return State{
		Transform:   Identity(),
		FillBrush:   SolidBrush{Color: Black},
		FillStyle:   "#000000",
		StrokeBrush: SolidBrush{Color: Black},
		StrokeStyle: "#000000",

		GlobalAlpha: 1,
		CompositeOp: CompositeSourceOver,

		LineWidth:  1,
		LineCap:    LineCapButt,
		LineJoin:   LineJoinMiter,
		MiterLimit: 10,

		ShadowColor: Transparent,

		Font:         "10px sans-serif",
		FontSize:     10,
		TextAlign:    AlignStart,
		TextBaseline: BaselineAlphabetic,
		Direction:    DirectionInherit,

		ImageSmoothingEnabled: true,
		ImageSmoothingQuality: SmoothingLow,
	}
}

// clone deep-copies the state so that mutations after a save do not leak
// into the saved entry.
func (s *State) clone() State {
	out := *s
	if s.DashList != nil {
		out.DashList = make([]float64, len(s.DashList))
		copy(out.DashList, s.DashList)
	}
	if s.Clips != nil {
		out.Clips = make([]clipEntry, len(s.Clips))
		copy(out.Clips, s.Clips)
	}
	return out
}

// dash materializes the state's dash list and offset as a stroke pattern,
// or nil for a solid line.
func (s *State) dash() *Dash {
	d := NewDash(s.DashList...)
	if d == nil {
		return nil
	}
	return d.WithOffset(s.DashOffset)
}
