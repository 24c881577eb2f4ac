package canvas

import "image"

// Painter is the sink that drawing operations are emitted into. A Painter
// is stateful: it tracks a current transform and clip stack mirroring the
// context's drawing-state stack.
//
// The built-in software painter is created by [NewSoftPainter]. Use
// [WithPainter] to inject a custom backend (GPU, recording, testing).
type Painter interface {
	// Save pushes the painter's transform and clip state.
	Save()
	// Restore pops the painter's transform and clip state. Restore on an
	// empty stack is a no-op.
	Restore()

	// SetTransform replaces the current transform.
	SetTransform(m Matrix)
	// Clip intersects the current clip with the given path under the
	// given fill rule. The path is in user space.
	Clip(path *Path2D, rule FillRule)

	// ClearRect resets the given user-space rectangle, mapped through the
	// current transform, to transparent black (opaque black for opaque
	// surfaces), ignoring clip, alpha and composite state.
	ClearRect(r Rect)

	// FillPath fills a path.
	FillPath(op FillOp)
	// StrokePath strokes a path.
	StrokePath(op StrokeOp)
	// DrawBitmap paints a source rectangle of an image into a destination
	// rectangle under the current transform.
	DrawBitmap(op BitmapOp)

	// Reset drops all saved state, restores the identity transform and
	// clears any clip.
	Reset()
}

// FillOp describes a single path fill.
type FillOp struct {
	Path  *Path2D
	Rule  FillRule
	Brush Brush

	Alpha  float64 // effective alpha in [0, 1], multiplied into the brush
	Op     CompositeOp
	Filter string  // filter descriptor, passed through unparsed. Empty is none
	Blur   float64 // shadow blur amount; the Gaussian sigma is Blur/2. 0 paints sharp
}

// StrokeOp describes a single path stroke.
type StrokeOp struct {
	Path  *Path2D
	Brush Brush

	Alpha  float64
	Op     CompositeOp
	Filter string
	Blur   float64

	LineWidth  float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
	Dash       *Dash
}

// BitmapOp describes painting SrcRect of Src into DstRect under the
// painter's current transform.
type BitmapOp struct {
	Src     image.Image
	SrcRect Rect
	DstRect Rect

	Alpha  float64
	Op     CompositeOp
	Filter string
	Blur   float64

	Smoothing bool
	Quality   SmoothingQuality
}

// SmoothingQuality selects the resampling filter used when an image is
// painted scaled with smoothing enabled.
type SmoothingQuality int

const (
	SmoothingLow SmoothingQuality = iota
	SmoothingMedium
	SmoothingHigh
)

var smoothingQualityNames = []string{"low", "medium", "high"}

func (q SmoothingQuality) String() string {
	return smoothingQualityNames[q]
}

// ParseSmoothingQuality maps a quality keyword to its enum value. Unknown
// keywords report ok=false and callers leave the current value unchanged.
func ParseSmoothingQuality(s string) (SmoothingQuality, bool) {
	for i, name := range smoothingQualityNames {
		if s == name {
			return SmoothingQuality(i), true
		}
	}
	return SmoothingLow, false
}
