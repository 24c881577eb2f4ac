package canvas

import (
	"image"
	"log/slog"
)

// originCleanReporter is implemented by image sources that may carry
// cross-origin pixels. Sources without the method are treated as clean.
type originCleanReporter interface {
	OriginClean() bool
}

// TaintedImage wraps an image source that is not origin-clean. Drawing it
// permanently marks the canvas origin-unclean, which blocks pixel
// read-back.
type TaintedImage struct {
	image.Image
}

// OriginClean implements originCleanReporter.
func (TaintedImage) OriginClean() bool { return false }

// ImageSource is the usability protocol for drawable images: the host
// owns decoding, the canvas only asks whether a source can be painted
// right now. An unusable source paints nothing; a usable source whose
// bitmap is not decoded yet defers the paint until the host retries.
type ImageSource interface {
	// Bitmap returns the decoded pixels, or nil while decoding is still
	// pending.
	Bitmap() *Pixmap

	// Usable reports whether the source can be painted at all. A broken
	// source reports false with the underlying failure.
	Usable() (bool, error)

	// OriginClean reports whether the pixels are same-origin. Drawing an
	// unclean source taints the canvas.
	OriginClean() bool
}

// BitmapImage is the plain in-memory ImageSource.
type BitmapImage struct {
	// Pix holds the decoded pixels; nil while decoding is pending.
	Pix *Pixmap

	// Tainted marks cross-origin pixels.
	Tainted bool

	// Err is the decode failure, if any; it makes the source unusable.
	Err error
}

// NewBitmapImage creates an origin-clean image source over the pixmap.
func NewBitmapImage(p *Pixmap) *BitmapImage {
	return &BitmapImage{Pix: p}
}

func (b *BitmapImage) Bitmap() *Pixmap {
	if b == nil {
		return nil
	}
	return b.Pix
}

func (b *BitmapImage) Usable() (bool, error) {
	if b == nil {
		return false, nil
	}
	if b.Err != nil {
		return false, b.Err
	}
	return true, nil
}

func (b *BitmapImage) OriginClean() bool { return b != nil && !b.Tainted }

// DrawImageSource paints an image source with its top-left corner at
// (dx, dy), after resolving its usability.
func (c *Context) DrawImageSource(src ImageSource, dx, dy float64) {
	if img, ok := c.resolveImageSource(src); ok {
		c.DrawImage(img, dx, dy)
	}
}

// DrawImageSourceSubRect paints the source rectangle (sx, sy, sw, sh) of
// an image source into the destination rectangle (dx, dy, dw, dh), after
// resolving its usability.
func (c *Context) DrawImageSourceSubRect(src ImageSource, sx, sy, sw, sh, dx, dy, dw, dh float64) {
	if img, ok := c.resolveImageSource(src); ok {
		c.DrawImageSubRect(img, sx, sy, sw, sh, dx, dy, dw, dh)
	}
}

// resolveImageSource runs the usability steps: unusable or broken sources
// resolve to nothing, an undecoded bitmap defers, and an origin-unclean
// source keeps its taint across the conversion.
func (c *Context) resolveImageSource(src ImageSource) (image.Image, bool) {
	if src == nil {
		return nil, false
	}
	ok, err := src.Usable()
	if err != nil {
		Logger().Warn("canvas: image source is broken", slog.String("error", err.Error()))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	pm := src.Bitmap()
	if pm == nil {
		Logger().Debug("canvas: image source not decoded yet, paint deferred")
		return nil, false
	}
	if !src.OriginClean() {
		return TaintedImage{Image: pm}, true
	}
	return pm, true
}

// DrawImage paints the whole image with its top-left corner at (dx, dy),
// one image pixel per canvas unit.
func (c *Context) DrawImage(img image.Image, dx, dy float64) {
	if img == nil {
		return
	}
	b := img.Bounds()
	c.drawImageInternal(img,
		0, 0, float64(b.Dx()), float64(b.Dy()),
		dx, dy, float64(b.Dx()), float64(b.Dy()))
}

// DrawImageRect paints the whole image scaled into the destination
// rectangle.
func (c *Context) DrawImageRect(img image.Image, dx, dy, dw, dh float64) {
	if img == nil {
		return
	}
	b := img.Bounds()
	c.drawImageInternal(img,
		0, 0, float64(b.Dx()), float64(b.Dy()),
		dx, dy, dw, dh)
}

// DrawImageSubRect paints the source rectangle (sx, sy, sw, sh) of the
// image into the destination rectangle (dx, dy, dw, dh).
func (c *Context) DrawImageSubRect(img image.Image, sx, sy, sw, sh, dx, dy, dw, dh float64) {
	c.drawImageInternal(img, sx, sy, sw, sh, dx, dy, dw, dh)
}

func (c *Context) drawImageInternal(img image.Image, sx, sy, sw, sh, dx, dy, dw, dh float64) {
	// Non-finite geometry is a silent no-op, never an error.
	if !allFinite(sx, sy, sw, sh, dx, dy, dw, dh) {
		return
	}
	if img == nil {
		return
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}

	// Negative extents shift the origin and flip to positive, for source
	// and destination independently.
	src := R(sx, sy, sw, sh).Normalized()
	dst := R(dx, dy, dw, dh).Normalized()

	// Sampling outside the image clips the source and shrinks the
	// destination by the same proportion, keeping the scale intact.
	imageRect := R(0, 0, float64(bounds.Dx()), float64(bounds.Dy()))
	clippedSrc := src.Intersect(imageRect)
	clippedDst := dst
	if clippedSrc != src {
		clippedDst.W = dst.W * (clippedSrc.W / src.W)
		clippedDst.H = dst.H * (clippedSrc.H / src.H)
	}

	if src.W == 0 || src.H == 0 {
		return
	}

	if c.ensureSurface() {
		if clippedSrc.W > 0 && clippedSrc.H > 0 {
			s := c.state()
			p := c.syncPainter()
			p.DrawBitmap(BitmapOp{
				Src:       img,
				SrcRect:   clippedSrc,
				DstRect:   clippedDst,
				Alpha:     s.GlobalAlpha,
				Op:        s.CompositeOp,
				Filter:    s.Filter,
				Smoothing: s.ImageSmoothingEnabled,
				Quality:   s.ImageSmoothingQuality,
			})
		}
	}

	// Sticky, one-way flag: once tainted, always tainted.
	if r, ok := img.(originCleanReporter); ok && !r.OriginClean() {
		c.originClean = false
	}
}
