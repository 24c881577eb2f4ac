package canvas

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/me-it-is/ladybird/text"
)

// Context is a 2D offscreen drawing context. It owns a drawing-state stack,
// a mutable current path and a lazily allocated backing surface, and turns
// drawing calls into primitive operations against a [Painter].
//
// A Context is not safe for concurrent use; callers sharing one across
// goroutines must serialize access themselves.
type Context struct {
	width  int
	height int
	alpha  bool

	surface *Surface
	painter Painter
	factory func(*Surface) Painter

	states []State
	path   *Path

	originClean bool

	face        text.Face
	shaper      text.Shaper
	colorParser ColorParser
}

// NewContext creates a context with a pending target size. The backing
// surface is not allocated until the first paint operation; repeated
// resizes before any draw cost nothing. Negative dimensions clamp to zero.
func NewContext(width, height int, opts ...ContextOption) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Context{
		width:       max(width, 0),
		height:      max(height, 0),
		alpha:       o.alpha,
		factory:     o.painter,
		states:      []State{defaultState()},
		path:        NewPath(),
		originClean: true,
		face:        o.face,
		shaper:      o.shaper,
		colorParser: o.colorParser,
	}
	if c.factory == nil {
		c.factory = func(s *Surface) Painter { return NewSoftPainter(s) }
	}
	return c
}

// Width returns the canvas width in pixels.
func (c *Context) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Context) Height() int { return c.height }

// OriginClean reports whether the canvas bitmap is still origin-clean.
// Drawing a cross-origin image source clears the flag permanently.
func (c *Context) OriginClean() bool { return c.originClean }

// SetSize resizes the canvas. The surface is discarded immediately but the
// replacement is not allocated until the next paint operation. Resizing
// resets the drawing state and the current path, like assigning to a
// canvas element's width or height.
func (c *Context) SetSize(width, height int) {
	c.width = max(width, 0)
	c.height = max(height, 0)
	c.surface = nil
	c.painter = nil
	c.states = []State{defaultState()}
	c.path.Clear()
}

// state returns the top of the drawing-state stack.
func (c *Context) state() *State {
	return &c.states[len(c.states)-1]
}

// ensureSurface allocates the backing surface on first use. It returns
// false when the target size is empty or allocation failed; paint
// operations treat that as "no sink available" and do nothing.
func (c *Context) ensureSurface() bool {
	if c.surface != nil {
		return true
	}
	if c.width == 0 || c.height == 0 {
		return false
	}
	format := FormatAlpha
	if !c.alpha {
		format = FormatOpaque
	}
	s, err := NewSurface(c.width, c.height, format)
	if err != nil {
		Logger().Warn("canvas: surface allocation failed",
			slog.Int("width", c.width), slog.Int("height", c.height))
		return false
	}
	Logger().Debug("canvas: surface allocated",
		slog.Int("width", c.width), slog.Int("height", c.height),
		slog.Bool("alpha", c.alpha))
	c.surface = s
	c.painter = c.factory(s)
	return true
}

// Surface returns the backing surface, allocating it if the target size is
// non-empty. Returns nil when no surface can exist.
func (c *Context) Surface() *Surface {
	c.ensureSurface()
	return c.surface
}

// Snapshot returns an unpremultiplied copy of the current canvas contents.
// Before any paint, the snapshot is transparent (or opaque black for an
// alpha-disabled context).
func (c *Context) Snapshot() *Pixmap {
	if !c.ensureSurface() {
		return NewPixmap(c.width, c.height)
	}
	return c.surface.Snapshot()
}

// syncPainter replays the active state's clip chain and transform into the
// painter. Keeping the painter authoritative only within a single
// operation avoids save/restore bookkeeping across lazy allocation.
func (c *Context) syncPainter() Painter {
	p := c.painter
	p.Reset()
	s := c.state()
	for _, cl := range s.Clips {
		p.SetTransform(cl.Transform)
		p.Clip(cl.Path, cl.Rule)
	}
	p.SetTransform(s.Transform)
	return p
}

// Save pushes a copy of the current drawing state.
func (c *Context) Save() {
	c.states = append(c.states, c.state().clone())
}

// Restore pops the drawing state. Restoring past the base state is a
// no-op.
func (c *Context) Restore() {
	if len(c.states) > 1 {
		c.states = c.states[:len(c.states)-1]
	}
}

// Reset clears the drawing-state stack back to a single default state,
// empties the current path and wipes the surface back to its background.
// The surface itself is kept, not reallocated.
func (c *Context) Reset() {
	c.states = []State{defaultState()}
	c.path.Clear()
	if c.surface != nil {
		c.surface.Clear()
		c.painter.Reset()
	}
}

// --- Transform ---

// Translate moves the origin of the coordinate space.
func (c *Context) Translate(x, y float64) {
	if !isFinite(x) || !isFinite(y) {
		return
	}
	s := c.state()
	s.Transform = s.Transform.Translated(x, y)
}

// Scale scales the coordinate space.
func (c *Context) Scale(x, y float64) {
	if !isFinite(x) || !isFinite(y) {
		return
	}
	s := c.state()
	s.Transform = s.Transform.Multiply(Scale(x, y))
}

// Rotate rotates the coordinate space clockwise by angle radians.
func (c *Context) Rotate(angle float64) {
	if !isFinite(angle) {
		return
	}
	s := c.state()
	s.Transform = s.Transform.Multiply(Rotate(angle))
}

// Transform post-multiplies the current transform by the given matrix
// components.
func (c *Context) Transform(a, b, cc, d, e, f float64) {
	m := Matrix{A: a, B: b, C: cc, D: d, E: e, F: f}
	if !m.IsFinite() {
		return
	}
	s := c.state()
	s.Transform = s.Transform.Multiply(m)
}

// SetTransform replaces the current transform.
func (c *Context) SetTransform(a, b, cc, d, e, f float64) {
	m := Matrix{A: a, B: b, C: cc, D: d, E: e, F: f}
	if !m.IsFinite() {
		return
	}
	c.state().Transform = m
}

// ResetTransform restores the identity transform.
func (c *Context) ResetTransform() {
	c.state().Transform = Identity()
}

// GetTransform returns the current transform.
func (c *Context) GetTransform() Matrix {
	return c.state().Transform
}

// --- Compositing ---

// GlobalAlpha returns the global alpha.
func (c *Context) GlobalAlpha() float64 {
	return c.state().GlobalAlpha
}

// SetGlobalAlpha sets the global alpha. Values outside [0, 1] and
// non-finite values leave the previous value unchanged.
func (c *Context) SetGlobalAlpha(alpha float64) {
	if !isFinite(alpha) || alpha < 0 || alpha > 1 {
		return
	}
	c.state().GlobalAlpha = alpha
}

// GlobalCompositeOperation returns the name of the active compositing
// operator.
func (c *Context) GlobalCompositeOperation() string {
	return c.state().CompositeOp.String()
}

// SetGlobalCompositeOperation sets the compositing operator by name.
// Unknown names are silently ignored.
func (c *Context) SetGlobalCompositeOperation(name string) {
	if op, ok := ParseCompositeOp(name); ok {
		c.state().CompositeOp = op
	}
}

// Filter returns the current filter descriptor, "none" when unset.
func (c *Context) Filter() string {
	if f := c.state().Filter; f != "" {
		return f
	}
	return "none"
}

// SetFilter sets the filter descriptor. The descriptor is stored and
// passed through to the painter untouched; no filter functions are parsed
// or applied yet.
//
// TODO: parse CSS filter-function lists once a filter pipeline exists in
// the painter.
func (c *Context) SetFilter(filter string) {
	Logger().Warn("canvas: filters are not applied", slog.String("filter", filter))
	c.state().Filter = filter
}

// --- Fill and stroke styles ---

// FillStyle returns the fill style string last accepted by SetFillStyle,
// or the default "#000000".
func (c *Context) FillStyle() string { return c.state().FillStyle }

// SetFillStyle sets the fill style from a color string. Strings the color
// parser rejects are ignored.
func (c *Context) SetFillStyle(style string) {
	if col, ok := c.colorParser(style); ok {
		s := c.state()
		s.FillBrush = SolidBrush{Color: col}
		s.FillStyle = style
	}
}

// SetFillBrush sets the fill style to an arbitrary brush, such as a
// gradient.
func (c *Context) SetFillBrush(b Brush) {
	if b == nil {
		return
	}
	s := c.state()
	s.FillBrush = b
	s.FillStyle = ""
}

// StrokeStyle returns the stroke style string last accepted by
// SetStrokeStyle.
func (c *Context) StrokeStyle() string { return c.state().StrokeStyle }

// SetStrokeStyle sets the stroke style from a color string.
func (c *Context) SetStrokeStyle(style string) {
	if col, ok := c.colorParser(style); ok {
		s := c.state()
		s.StrokeBrush = SolidBrush{Color: col}
		s.StrokeStyle = style
	}
}

// SetStrokeBrush sets the stroke style to an arbitrary brush.
func (c *Context) SetStrokeBrush(b Brush) {
	if b == nil {
		return
	}
	s := c.state()
	s.StrokeBrush = b
	s.StrokeStyle = ""
}

// --- Line geometry ---

// LineWidth returns the stroke width.
func (c *Context) LineWidth() float64 { return c.state().LineWidth }

// SetLineWidth sets the stroke width. Zero, negative and non-finite
// values are ignored.
func (c *Context) SetLineWidth(w float64) {
	if !isFinite(w) || w <= 0 {
		return
	}
	c.state().LineWidth = w
}

// LineCap returns the line cap keyword.
func (c *Context) LineCap() string { return lineCapNames[c.state().LineCap] }

// SetLineCap sets the line cap by keyword. Unknown keywords are ignored.
func (c *Context) SetLineCap(cap string) {
	if v, ok := ParseLineCap(cap); ok {
		c.state().LineCap = v
	}
}

// LineJoin returns the line join keyword.
func (c *Context) LineJoin() string { return lineJoinNames[c.state().LineJoin] }

// SetLineJoin sets the line join by keyword. Unknown keywords are ignored.
func (c *Context) SetLineJoin(join string) {
	if v, ok := ParseLineJoin(join); ok {
		c.state().LineJoin = v
	}
}

// MiterLimit returns the miter limit.
func (c *Context) MiterLimit() float64 { return c.state().MiterLimit }

// SetMiterLimit sets the miter limit. Zero, negative and non-finite
// values are ignored.
func (c *Context) SetMiterLimit(limit float64) {
	if !isFinite(limit) || limit <= 0 {
		return
	}
	c.state().MiterLimit = limit
}

// LineDash returns a copy of the dash segment list.
func (c *Context) LineDash() []float64 {
	s := c.state()
	out := make([]float64, len(s.DashList))
	copy(out, s.DashList)
	return out
}

// SetLineDash sets the dash segment list. A list containing a negative or
// non-finite segment is rejected wholesale; an empty list strokes solid.
func (c *Context) SetLineDash(segments []float64) {
	if !validDashSegments(segments) {
		return
	}
	s := c.state()
	s.DashList = make([]float64, len(segments))
	copy(s.DashList, segments)
}

// LineDashOffset returns the dash offset.
func (c *Context) LineDashOffset() float64 { return c.state().DashOffset }

// SetLineDashOffset sets the dash offset. Non-finite values are ignored.
func (c *Context) SetLineDashOffset(offset float64) {
	if !isFinite(offset) {
		return
	}
	c.state().DashOffset = offset
}

// --- Shadows ---

// ShadowOffsetX returns the horizontal shadow offset.
func (c *Context) ShadowOffsetX() float64 { return c.state().ShadowOffsetX }

// SetShadowOffsetX sets the horizontal shadow offset. Non-finite values
// are ignored.
func (c *Context) SetShadowOffsetX(x float64) {
	if !isFinite(x) {
		return
	}
	c.state().ShadowOffsetX = x
}

// ShadowOffsetY returns the vertical shadow offset.
func (c *Context) ShadowOffsetY() float64 { return c.state().ShadowOffsetY }

// SetShadowOffsetY sets the vertical shadow offset.
func (c *Context) SetShadowOffsetY(y float64) {
	if !isFinite(y) {
		return
	}
	c.state().ShadowOffsetY = y
}

// ShadowBlur returns the shadow blur radius.
func (c *Context) ShadowBlur() float64 { return c.state().ShadowBlur }

// SetShadowBlur sets the shadow blur radius. Negative and non-finite
// values are ignored.
func (c *Context) SetShadowBlur(blur float64) {
	if !isFinite(blur) || blur < 0 {
		return
	}
	c.state().ShadowBlur = blur
}

// ShadowColor returns the shadow color.
func (c *Context) ShadowColor() RGBA { return c.state().ShadowColor }

// SetShadowColor sets the shadow color from a color string. Strings the
// color parser rejects are ignored.
func (c *Context) SetShadowColor(style string) {
	if col, ok := c.colorParser(style); ok {
		c.state().ShadowColor = col
	}
}

// --- Text attributes ---

// Font returns the font shorthand string.
func (c *Context) Font() string { return c.state().Font }

// SetFont sets the font from a shorthand string. Only the pixel size is
// interpreted; the face itself comes from [WithFace]. Strings without a
// recognizable "<number>px" component are ignored.
func (c *Context) SetFont(font string) {
	size, ok := parseFontSize(font)
	if !ok {
		Logger().Warn("canvas: unparseable font", slog.String("font", font))
		return
	}
	s := c.state()
	s.Font = font
	s.FontSize = size
}

// parseFontSize extracts the first "<number>px" token from a CSS font
// shorthand.
func parseFontSize(font string) (float64, bool) {
	for _, tok := range strings.Fields(font) {
		if !strings.HasSuffix(tok, "px") {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSuffix(tok, "px"), 64)
		if err != nil || !isFinite(v) || v <= 0 {
			continue
		}
		return v, true
	}
	return 0, false
}

// TextAlign returns the text alignment keyword.
func (c *Context) TextAlign() string { return c.state().TextAlign.String() }

// SetTextAlign sets the text alignment by keyword. Unknown keywords are
// ignored.
func (c *Context) SetTextAlign(align string) {
	if v, ok := ParseTextAlign(align); ok {
		c.state().TextAlign = v
	}
}

// TextBaseline returns the text baseline keyword.
func (c *Context) TextBaseline() string { return c.state().TextBaseline.String() }

// SetTextBaseline sets the text baseline by keyword.
func (c *Context) SetTextBaseline(baseline string) {
	if v, ok := ParseTextBaseline(baseline); ok {
		c.state().TextBaseline = v
	}
}

// Direction returns the text direction keyword.
func (c *Context) Direction() string { return c.state().Direction.String() }

// SetDirection sets the text direction by keyword.
func (c *Context) SetDirection(dir string) {
	if v, ok := ParseDirection(dir); ok {
		c.state().Direction = v
	}
}

// --- Image smoothing ---

// ImageSmoothingEnabled reports whether scaled images are resampled with
// smoothing.
func (c *Context) ImageSmoothingEnabled() bool { return c.state().ImageSmoothingEnabled }

// SetImageSmoothingEnabled toggles image smoothing.
func (c *Context) SetImageSmoothingEnabled(enabled bool) {
	c.state().ImageSmoothingEnabled = enabled
}

// ImageSmoothingQuality returns the smoothing quality keyword.
func (c *Context) ImageSmoothingQuality() string {
	return c.state().ImageSmoothingQuality.String()
}

// SetImageSmoothingQuality sets the smoothing quality by keyword. Unknown
// keywords are ignored.
func (c *Context) SetImageSmoothingQuality(quality string) {
	if v, ok := ParseSmoothingQuality(quality); ok {
		c.state().ImageSmoothingQuality = v
	}
}

// --- Path building ---

// BeginPath clears the current path.
func (c *Context) BeginPath() { c.path.Clear() }

// Path returns the mutable current path.
func (c *Context) Path() *Path { return c.path }

// MoveTo starts a new subpath at (x, y).
func (c *Context) MoveTo(x, y float64) { c.path.MoveTo(x, y) }

// LineTo adds a line segment to (x, y).
func (c *Context) LineTo(x, y float64) { c.path.LineTo(x, y) }

// QuadraticCurveTo adds a quadratic Bezier segment.
func (c *Context) QuadraticCurveTo(cx, cy, x, y float64) {
	c.path.QuadraticTo(cx, cy, x, y)
}

// BezierCurveTo adds a cubic Bezier segment.
func (c *Context) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() { c.path.ClosePath() }

// Rect adds a closed rectangle subpath.
func (c *Context) Rect(x, y, w, h float64) { c.path.Rect(x, y, w, h) }

// Arc adds a circular arc approximated by cubic segments.
func (c *Context) Arc(x, y, radius, startAngle, endAngle float64, counterclockwise bool) {
	c.path.Arc(x, y, radius, startAngle, endAngle, counterclockwise)
}

// Ellipse adds an elliptical arc approximated by cubic segments.
func (c *Context) Ellipse(x, y, radiusX, radiusY, rotation, startAngle, endAngle float64, counterclockwise bool) {
	c.path.Ellipse(x, y, radiusX, radiusY, rotation, startAngle, endAngle, counterclockwise)
}

// IsPointInPath reports whether the point (x, y), given in canvas
// coordinates, lies inside the current path under the given fill rule.
// The point is mapped through the inverse of the current transform; if
// the transform is singular the untransformed point is used.
func (c *Context) IsPointInPath(x, y float64, rule FillRule) bool {
	return c.IsPointInPathSource(c.path, x, y, rule)
}

// IsPointInPathSource is IsPointInPath against an arbitrary path source.
func (c *Context) IsPointInPathSource(src PathSource, x, y float64, rule FillRule) bool {
	pt := Pt(x, y)
	if inv, ok := c.state().Transform.Inverse(); ok {
		pt = inv.TransformPoint(pt)
	}
	return freezeSource(src).Contains(pt, rule)
}
