package canvas

import (
	"image"
	"math"

	"github.com/me-it-is/ladybird/internal/blend"
)

// SoftPainter is the built-in CPU rasterizing Painter. It paints into a
// Surface using scanline coverage, the blend package for per-pixel
// compositing, and box-blur layers for shadow rendering.
type SoftPainter struct {
	surface *Surface
	state   softState
	stack   []softState
}

type softState struct {
	transform Matrix
	clip      *clipMask // nil means unclipped
}

// clipMask is full-surface clip coverage. Masks are immutable once built;
// intersecting produces a new mask, so saved states can share pointers.
type clipMask struct {
	cov []uint8
}

// NewSoftPainter creates a software painter targeting the given surface.
func NewSoftPainter(s *Surface) *SoftPainter {
	return &SoftPainter{
		surface: s,
		state:   softState{transform: Identity()},
	}
}

// Save implements Painter.
func (p *SoftPainter) Save() {
	p.stack = append(p.stack, p.state)
}

// Restore implements Painter.
func (p *SoftPainter) Restore() {
	if n := len(p.stack); n > 0 {
		p.state = p.stack[n-1]
		p.stack = p.stack[:n-1]
	}
}

// SetTransform implements Painter.
func (p *SoftPainter) SetTransform(m Matrix) {
	p.state.transform = m
}

// Reset implements Painter.
func (p *SoftPainter) Reset() {
	p.stack = p.stack[:0]
	p.state = softState{transform: Identity()}
}

func (p *SoftPainter) bounds() image.Rectangle {
	return image.Rect(0, 0, p.surface.width, p.surface.height)
}

// Clip implements Painter. The path is rasterized under the current
// transform and intersected with the active clip.
func (p *SoftPainter) Clip(path *Path2D, rule FillRule) {
	mask := rasterize(path.Transformed(p.state.transform).Flatten(flattenTolerance), rule, p.bounds())

	next := &clipMask{cov: make([]uint8, p.surface.width*p.surface.height)}
	if mask != nil {
		w := p.surface.width
		for y := mask.rect.Min.Y; y < mask.rect.Max.Y; y++ {
			for x := mask.rect.Min.X; x < mask.rect.Max.X; x++ {
				next.cov[y*w+x] = mask.at(x, y)
			}
		}
	}
	if old := p.state.clip; old != nil {
		for i, v := range old.cov {
			next.cov[i] = mulCov(next.cov[i], v)
		}
	}
	p.state.clip = next
}

// clipCov returns the clip coverage at a device pixel, 255 when unclipped.
func (p *SoftPainter) clipCov(x, y int) uint8 {
	if p.state.clip == nil {
		return 255
	}
	return p.state.clip.cov[y*p.surface.width+x]
}

// ClearRect implements Painter. The rectangle is mapped through the
// current transform; clip, alpha and composite state are ignored.
func (p *SoftPainter) ClearRect(r Rect) {
	m := p.state.transform
	if m.IsAxisAligned() {
		a := m.TransformPoint(Pt(r.X, r.Y))
		b := m.TransformPoint(Pt(r.X+r.W, r.Y+r.H))
		p.surface.ClearRect(R(a.X, a.Y, b.X-a.X, b.Y-a.Y).Normalized())
		return
	}

	// Rotated or sheared: blend each pixel toward the background by the
	// rectangle's coverage.
	mask := rasterize(RectPath(r.X, r.Y, r.W, r.H).Transformed(m).Flatten(flattenTolerance), FillRuleNonZero, p.bounds())
	if mask == nil {
		return
	}
	var bg [4]uint8
	if p.surface.format == FormatOpaque {
		bg[3] = 255
	}
	for y := mask.rect.Min.Y; y < mask.rect.Max.Y; y++ {
		for x := mask.rect.Min.X; x < mask.rect.Max.X; x++ {
			cov := mask.at(x, y)
			if cov == 0 {
				continue
			}
			i := p.surface.PixOffset(x, y)
			for c := 0; c < 4; c++ {
				p.surface.pix[i+c] = lerpByte(p.surface.pix[i+c], bg[c], cov)
			}
		}
	}
}

// FillPath implements Painter.
func (p *SoftPainter) FillPath(op FillOp) {
	polys := op.Path.Transformed(p.state.transform).Flatten(flattenTolerance)
	mask := rasterize(polys, op.Rule, p.bounds())
	p.paintMask(mask, op.Brush, op.Alpha, op.Op, op.Blur)
}

// StrokePath implements Painter. Stroke geometry is expanded in user
// space so line width follows the transform, then rasterized with the
// nonzero rule.
func (p *SoftPainter) StrokePath(op StrokeOp) {
	tol := flattenTolerance / math.Max(1, transformScale(p.state.transform))
	userPolys := op.Path.Flatten(tol)
	outline := strokePolys(userPolys, op.LineWidth, op.Cap, op.Join, op.MiterLimit, op.Dash)
	for _, poly := range outline {
		for i, pt := range poly {
			poly[i] = p.state.transform.TransformPoint(pt)
		}
	}
	mask := rasterize(outline, FillRuleNonZero, p.bounds())
	p.paintMask(mask, op.Brush, op.Alpha, op.Op, op.Blur)
}

// transformScale estimates the largest scale factor of the matrix, used
// to keep flattening tolerance meaningful in device space.
func transformScale(m Matrix) float64 {
	return math.Max(math.Hypot(m.A, m.D), math.Hypot(m.B, m.E))
}

// paintMask composites brush color through a coverage mask onto the
// surface. Blurred paints render into an intermediate layer first.
func (p *SoftPainter) paintMask(mask *coverMask, brush Brush, alpha float64, op CompositeOp, blur float64) {
	mode := blend.Mode(op)
	if mask == nil && !blend.Unbounded(mode) {
		return
	}

	if blur > 0 && mask != nil {
		sigma := blur / 2
		l := p.renderLayer(mask, brush, alpha, sigma)
		blurPremul(l.pix, l.rect.Dx(), l.rect.Dy(), sigma)
		p.compositeLayer(l, mode)
		return
	}

	f := blend.Get(mode)
	unbounded := blend.Unbounded(mode)
	region := p.bounds()
	if mask != nil && !unbounded {
		region = mask.rect
	}
	srcAt := p.sourceFunc(brush, alpha)

	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			ccov := p.clipCov(x, y)
			if ccov == 0 {
				continue
			}
			mcov := mask.at(x, y)
			if mcov == 0 && !unbounded {
				continue
			}
			sr, sg, sb, sa := srcAt(x, y)
			if mcov < 255 {
				sr = mulCov(sr, mcov)
				sg = mulCov(sg, mcov)
				sb = mulCov(sb, mcov)
				sa = mulCov(sa, mcov)
			}
			p.writePixel(f, x, y, sr, sg, sb, sa, ccov)
		}
	}
}

// sourceFunc resolves the brush to a premultiplied per-pixel source.
// Solid brushes collapse to a constant; gradients sample in user space
// through the inverse transform.
func (p *SoftPainter) sourceFunc(brush Brush, alpha float64) func(x, y int) (uint8, uint8, uint8, uint8) {
	if c, ok := asSolidColor(brush); ok {
		sr, sg, sb, sa := premulBytes(c, alpha)
		return func(int, int) (uint8, uint8, uint8, uint8) { return sr, sg, sb, sa }
	}
	inv, ok := p.state.transform.Inverse()
	if !ok {
		inv = Identity()
	}
	return func(x, y int) (uint8, uint8, uint8, uint8) {
		u := inv.TransformPoint(Pt(float64(x)+0.5, float64(y)+0.5))
		return premulBytes(brush.ColorAt(u.X, u.Y), alpha)
	}
}

// layer is a temporary premultiplied buffer for blur rendering.
type layer struct {
	rect image.Rectangle
	pix  []uint8
}

// renderLayer paints the mask into a fresh layer inflated to hold the
// blur spread (three standard deviations each way).
func (p *SoftPainter) renderLayer(mask *coverMask, brush Brush, alpha float64, sigma float64) *layer {
	r := mask.rect.Inset(-int(math.Ceil(3 * sigma))).Intersect(p.bounds())
	l := &layer{rect: r, pix: make([]uint8, r.Dx()*r.Dy()*4)}
	srcAt := p.sourceFunc(brush, alpha)
	for y := mask.rect.Min.Y; y < mask.rect.Max.Y; y++ {
		for x := mask.rect.Min.X; x < mask.rect.Max.X; x++ {
			cov := mask.at(x, y)
			if cov == 0 {
				continue
			}
			sr, sg, sb, sa := srcAt(x, y)
			i := ((y-r.Min.Y)*r.Dx() + (x - r.Min.X)) * 4
			l.pix[i] = mulCov(sr, cov)
			l.pix[i+1] = mulCov(sg, cov)
			l.pix[i+2] = mulCov(sb, cov)
			l.pix[i+3] = mulCov(sa, cov)
		}
	}
	return l
}

// compositeLayer blends a premultiplied layer onto the surface with clip
// coverage applied.
func (p *SoftPainter) compositeLayer(l *layer, mode blend.Mode) {
	f := blend.Get(mode)
	region := l.rect.Intersect(p.bounds())
	if blend.Unbounded(mode) {
		region = p.bounds()
	}
	w := l.rect.Dx()
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			ccov := p.clipCov(x, y)
			if ccov == 0 {
				continue
			}
			var sr, sg, sb, sa uint8
			if image.Pt(x, y).In(l.rect) {
				i := ((y-l.rect.Min.Y)*w + (x - l.rect.Min.X)) * 4
				sr, sg, sb, sa = l.pix[i], l.pix[i+1], l.pix[i+2], l.pix[i+3]
			}
			if sa == 0 && sr == 0 && sg == 0 && sb == 0 && !blend.Unbounded(mode) {
				continue
			}
			p.writePixel(f, x, y, sr, sg, sb, sa, ccov)
		}
	}
}

// writePixel blends one premultiplied source pixel onto the surface.
// Partial clip coverage interpolates the blended result back toward the
// destination so clip edges stay antialiased for every operator.
func (p *SoftPainter) writePixel(f blend.Func, x, y int, sr, sg, sb, sa, ccov uint8) {
	i := p.surface.PixOffset(x, y)
	pix := p.surface.pix
	dr, dg, db, da := pix[i], pix[i+1], pix[i+2], pix[i+3]
	r, g, b, a := f(sr, sg, sb, sa, dr, dg, db, da)
	if ccov < 255 {
		r = lerpByte(dr, r, ccov)
		g = lerpByte(dg, g, ccov)
		b = lerpByte(db, b, ccov)
		a = lerpByte(da, a, ccov)
	}
	if p.surface.format == FormatOpaque {
		a = 255
	}
	pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, a
}

// premulBytes converts a float color, scaled by alpha, to premultiplied
// bytes.
func premulBytes(c RGBA, alpha float64) (uint8, uint8, uint8, uint8) {
	a := c.A * alpha
	if a <= 0 {
		return 0, 0, 0, 0
	}
	if a > 1 {
		a = 1
	}
	toByte := func(v float64) uint8 {
		v *= a * 255
		if v <= 0 {
			return 0
		}
		if v >= 255 {
			return 255
		}
		return uint8(v + 0.5)
	}
	return toByte(c.R), toByte(c.G), toByte(c.B), uint8(a*255 + 0.5)
}

func mulCov(v, cov uint8) uint8 {
	return uint8((uint32(v)*uint32(cov) + 127) / 255)
}

// lerpByte interpolates from a to b by t in [0, 255].
func lerpByte(a, b, t uint8) uint8 {
	return uint8((uint32(a)*(255-uint32(t)) + uint32(b)*uint32(t) + 127) / 255)
}
