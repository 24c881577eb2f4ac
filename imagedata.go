package canvas

import "image"

// ImageData is a rectangle of pixels exchanged with the canvas. The buffer
// holds unpremultiplied RGBA, 4 bytes per pixel, row-major.
type ImageData struct {
	width  int
	height int
	data   []uint8
}

// NewImageData creates a transparent pixel buffer. Zero width or height is
// reported as ErrIndexSize; negative dimensions use their magnitude.
func NewImageData(width, height int) (*ImageData, error) {
	if width == 0 || height == 0 {
		return nil, ErrIndexSize
	}
	if width < 0 {
		width = -width
	}
	if height < 0 {
		height = -height
	}
	return &ImageData{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// Width returns the buffer width in pixels.
func (d *ImageData) Width() int { return d.width }

// Height returns the buffer height in pixels.
func (d *ImageData) Height() int { return d.height }

// Data returns the raw unpremultiplied pixel buffer, or nil after Detach.
func (d *ImageData) Data() []uint8 { return d.data }

// Detach releases the pixel buffer and returns it. Afterwards the
// ImageData is unusable: pixel operations on it fail with
// ErrDetachedBuffer.
func (d *ImageData) Detach() []uint8 {
	buf := d.data
	d.data = nil
	return buf
}

// Detached reports whether the buffer has been released.
func (d *ImageData) Detached() bool { return d.data == nil }

// CreateImageData creates a transparent ImageData sized (width, height).
func (c *Context) CreateImageData(width, height int) (*ImageData, error) {
	return NewImageData(width, height)
}

// GetImageData reads back the rectangle (x, y, w, h) of the canvas as
// unpremultiplied pixels. Zero extents fail with ErrIndexSize; an
// origin-unclean canvas fails with ErrSecurity. Pixels outside the canvas,
// and every pixel when nothing was ever painted, read as transparent
// black.
func (c *Context) GetImageData(x, y, w, h int) (*ImageData, error) {
	if w == 0 || h == 0 {
		return nil, ErrIndexSize
	}
	if !c.originClean {
		return nil, ErrSecurity
	}

	if w < 0 {
		x += w
		w = -w
	}
	if h < 0 {
		y += h
		h = -h
	}

	out, err := NewImageData(w, h)
	if err != nil {
		return nil, err
	}

	// An unallocated surface reads as if nothing was ever painted.
	if !c.ensureSurface() {
		return out, nil
	}

	s := c.surface
	for row := 0; row < h; row++ {
		sy := y + row
		if sy < 0 || sy >= s.height {
			continue
		}
		for col := 0; col < w; col++ {
			sx := x + col
			if sx < 0 || sx >= s.width {
				continue
			}
			si := s.PixOffset(sx, sy)
			di := (row*w + col) * 4
			r, g, b, a := s.pix[si], s.pix[si+1], s.pix[si+2], s.pix[si+3]
			out.data[di+0], out.data[di+1], out.data[di+2] = unpremultiply(r, g, b, a)
			out.data[di+3] = a
		}
	}
	return out, nil
}

// PutImageData writes the whole buffer at offset (dx, dy).
func (c *Context) PutImageData(d *ImageData, dx, dy int) error {
	if d == nil {
		return ErrDetachedBuffer
	}
	return c.PutImageDataDirty(d, dx, dy, 0, 0, d.width, d.height)
}

// PutImageDataDirty writes the dirty sub-rectangle of the buffer at offset
// (dx+dirtyX, dy+dirtyY). The write is an axis-aligned source-over bitmap
// paint under the identity transform: the current transform, clip, global
// alpha and compositing operator are all bypassed.
func (c *Context) PutImageDataDirty(d *ImageData, dx, dy, dirtyX, dirtyY, dirtyW, dirtyH int) error {
	if d == nil || d.Detached() {
		return ErrDetachedBuffer
	}

	if dirtyW < 0 {
		dirtyX += dirtyW
		dirtyW = -dirtyW
	}
	if dirtyH < 0 {
		dirtyY += dirtyH
		dirtyH = -dirtyH
	}

	if dirtyX < 0 {
		dirtyW += dirtyX
		dirtyX = 0
	}
	if dirtyY < 0 {
		dirtyH += dirtyY
		dirtyY = 0
	}

	if dirtyX+dirtyW > d.width {
		dirtyW = d.width - dirtyX
	}
	if dirtyY+dirtyH > d.height {
		dirtyH = d.height - dirtyY
	}

	if dirtyW <= 0 || dirtyH <= 0 {
		return nil
	}

	if !c.ensureSurface() {
		return nil
	}

	src := &image.NRGBA{
		Pix:    d.data,
		Stride: d.width * 4,
		Rect:   image.Rect(0, 0, d.width, d.height),
	}

	// The paint runs outside the drawing state: identity transform, no
	// clip, full alpha, source-over.
	p := c.painter
	p.Reset()
	p.DrawBitmap(BitmapOp{
		Src:     src,
		SrcRect: R(float64(dirtyX), float64(dirtyY), float64(dirtyW), float64(dirtyH)),
		DstRect: R(float64(dx+dirtyX), float64(dy+dirtyY), float64(dirtyW), float64(dirtyH)),
		Alpha:   1,
		Op:      CompositeSourceOver,
	})
	return nil
}
