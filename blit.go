package canvas

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/me-it-is/ladybird/internal/blend"
)

// DrawBitmap implements Painter. Source-over paints go through the
// x/image/draw scalers; other operators and blurred paints fall back to
// inverse-mapped sampling composited through the blend package.
func (p *SoftPainter) DrawBitmap(op BitmapOp) {
	if op.Src == nil || op.SrcRect.IsEmpty() || op.DstRect.IsEmpty() {
		return
	}
	m := p.bitmapMatrix(op)

	if (op.Op == CompositeSourceOver || op.Op == CompositeNormal) && op.Blur <= 0 {
		p.blitFast(op, m)
		return
	}
	p.blitSlow(op, m)
}

// bitmapMatrix maps absolute source-image coordinates to device space.
func (p *SoftPainter) bitmapMatrix(op BitmapOp) Matrix {
	b := op.Src.Bounds()
	toDst := Translate(op.DstRect.X, op.DstRect.Y).
		Multiply(Scale(op.DstRect.W/op.SrcRect.W, op.DstRect.H/op.SrcRect.H)).
		Multiply(Translate(-(float64(b.Min.X) + op.SrcRect.X), -(float64(b.Min.Y) + op.SrcRect.Y)))
	return p.state.transform.Multiply(toDst)
}

func bitmapScaler(smoothing bool, quality SmoothingQuality) xdraw.Transformer {
	if !smoothing {
		return xdraw.NearestNeighbor
	}
	switch quality {
	case SmoothingMedium:
		return xdraw.BiLinear
	case SmoothingHigh:
		return xdraw.CatmullRom
	}
	return xdraw.ApproxBiLinear
}

// blitFast paints source-over through x/image/draw, honoring global
// alpha via a uniform source mask and the clip via a destination mask.
func (p *SoftPainter) blitFast(op BitmapOp, m Matrix) {
	b := op.Src.Bounds()
	sr := image.Rect(
		b.Min.X+int(math.Floor(op.SrcRect.X)),
		b.Min.Y+int(math.Floor(op.SrcRect.Y)),
		b.Min.X+int(math.Ceil(op.SrcRect.X+op.SrcRect.W)),
		b.Min.Y+int(math.Ceil(op.SrcRect.Y+op.SrcRect.H)),
	).Intersect(b)
	if sr.Empty() {
		return
	}

	var opts *xdraw.Options
	if op.Alpha < 1 || p.state.clip != nil {
		opts = &xdraw.Options{}
		if op.Alpha < 1 {
			a := uint8(math.Max(0, op.Alpha)*255 + 0.5)
			opts.SrcMask = image.NewUniform(color.Alpha{A: a})
		}
		if p.state.clip != nil {
			opts.DstMask = &image.Alpha{
				Pix:    p.state.clip.cov,
				Stride: p.surface.width,
				Rect:   p.bounds(),
			}
		}
	}

	aff := f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
	bitmapScaler(op.Smoothing, op.Quality).Transform(p.surface.Image(), aff, op.Src, sr, xdraw.Over, opts)
}

// blitSlow inverse-maps each device pixel into the source image and
// composites through the blend function. Blurred paints go through an
// intermediate layer like blurred fills.
func (p *SoftPainter) blitSlow(op BitmapOp, m Matrix) {
	inv, ok := m.Inverse()
	if !ok {
		return
	}

	// Device bounding box of the destination rectangle.
	b := op.Src.Bounds()
	sx0 := float64(b.Min.X) + op.SrcRect.X
	sy0 := float64(b.Min.Y) + op.SrcRect.Y
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range [4]Point{
		{sx0, sy0},
		{sx0 + op.SrcRect.W, sy0},
		{sx0, sy0 + op.SrcRect.H},
		{sx0 + op.SrcRect.W, sy0 + op.SrcRect.H},
	} {
		d := m.TransformPoint(c)
		minX = math.Min(minX, d.X)
		maxX = math.Max(maxX, d.X)
		minY = math.Min(minY, d.Y)
		maxY = math.Max(maxY, d.Y)
	}
	box := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(p.bounds())

	mode := blend.Mode(op.Op)
	if box.Empty() && !blend.Unbounded(mode) {
		return
	}

	alpha := math.Min(math.Max(op.Alpha, 0), 1)
	sample := func(x, y int) (uint8, uint8, uint8, uint8) {
		u := inv.TransformPoint(Pt(float64(x)+0.5, float64(y)+0.5))
		if u.X < sx0 || u.X >= sx0+op.SrcRect.W || u.Y < sy0 || u.Y >= sy0+op.SrcRect.H {
			return 0, 0, 0, 0
		}
		c := color.RGBAModel.Convert(op.Src.At(int(math.Floor(u.X)), int(math.Floor(u.Y)))).(color.RGBA)
		if alpha < 1 {
			s := uint8(alpha*255 + 0.5)
			return mulCov(c.R, s), mulCov(c.G, s), mulCov(c.B, s), mulCov(c.A, s)
		}
		return c.R, c.G, c.B, c.A
	}

	if op.Blur > 0 && !box.Empty() {
		sigma := op.Blur / 2
		r := box.Inset(-int(math.Ceil(3 * sigma))).Intersect(p.bounds())
		l := &layer{rect: r, pix: make([]uint8, r.Dx()*r.Dy()*4)}
		for y := box.Min.Y; y < box.Max.Y; y++ {
			for x := box.Min.X; x < box.Max.X; x++ {
				sr, sg, sb, sa := sample(x, y)
				i := ((y-r.Min.Y)*r.Dx() + (x - r.Min.X)) * 4
				l.pix[i], l.pix[i+1], l.pix[i+2], l.pix[i+3] = sr, sg, sb, sa
			}
		}
		blurPremul(l.pix, l.rect.Dx(), l.rect.Dy(), sigma)
		p.compositeLayer(l, mode)
		return
	}

	f := blend.Get(mode)
	region := box
	if blend.Unbounded(mode) {
		region = p.bounds()
	}
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			ccov := p.clipCov(x, y)
			if ccov == 0 {
				continue
			}
			var sr, sg, sb, sa uint8
			if image.Pt(x, y).In(box) {
				sr, sg, sb, sa = sample(x, y)
			}
			p.writePixel(f, x, y, sr, sg, sb, sa, ccov)
		}
	}
}
