package canvas

import (
	"image"
	"image/color"
	"math"
)

// SurfaceFormat selects the pixel format of a backing surface.
type SurfaceFormat int

const (
	// FormatAlpha stores premultiplied RGBA with a real alpha channel.
	FormatAlpha SurfaceFormat = iota
	// FormatOpaque stores RGBX: the alpha byte is kept at 255 and cleared
	// pixels are opaque black.
	FormatOpaque
)

// Surface is the backing bitmap drawn into by a Painter. Pixels are stored
// premultiplied, 4 bytes each, row-major.
type Surface struct {
	width  int
	height int
	format SurfaceFormat
	pix    []uint8
}

// maxSurfaceDim bounds each surface dimension. Limits match what mainstream
// raster backends accept for a single texture.
const maxSurfaceDim = 32768

// NewSurface allocates a surface of the given size. It returns
// ErrSurfaceAllocation when the dimensions are not positive or exceed the
// supported maximum.
func NewSurface(width, height int, format SurfaceFormat) (*Surface, error) {
	if width <= 0 || height <= 0 || width > maxSurfaceDim || height > maxSurfaceDim {
		return nil, ErrSurfaceAllocation
	}
	s := &Surface{
		width:  width,
		height: height,
		format: format,
		pix:    make([]uint8, width*height*4),
	}
	s.Clear()
	return s, nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Format returns the surface pixel format.
func (s *Surface) Format() SurfaceFormat { return s.format }

// Pix returns the raw premultiplied pixel data.
func (s *Surface) Pix() []uint8 { return s.pix }

// PixOffset returns the byte offset of pixel (x, y).
func (s *Surface) PixOffset(x, y int) int {
	return (y*s.width + x) * 4
}

// Clear resets every pixel to the surface's background: transparent black
// for FormatAlpha, opaque black for FormatOpaque.
func (s *Surface) Clear() {
	if s.format == FormatAlpha {
		clear(s.pix)
		return
	}
	for i := 0; i < len(s.pix); i += 4 {
		s.pix[i+0] = 0
		s.pix[i+1] = 0
		s.pix[i+2] = 0
		s.pix[i+3] = 255
	}
}

// ClearRect resets pixels inside the given device rectangle to the
// background, clamped to the surface bounds.
func (s *Surface) ClearRect(r Rect) {
	x0 := int(math.Floor(r.X))
	y0 := int(math.Floor(r.Y))
	x1 := int(math.Ceil(r.X + r.W))
	y1 := int(math.Ceil(r.Y + r.H))
	x0 = max(x0, 0)
	y0 = max(y0, 0)
	x1 = min(x1, s.width)
	y1 = min(y1, s.height)

	var bg [4]uint8
	if s.format == FormatOpaque {
		bg[3] = 255
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			i := s.PixOffset(x, y)
			copy(s.pix[i:i+4], bg[:])
		}
	}
}

// ColorModel implements image.Image.
func (s *Surface) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (s *Surface) Bounds() image.Rectangle { return image.Rect(0, 0, s.width, s.height) }

// At implements image.Image. The returned color is premultiplied.
func (s *Surface) At(x, y int) color.Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return color.RGBA{}
	}
	i := s.PixOffset(x, y)
	return color.RGBA{R: s.pix[i+0], G: s.pix[i+1], B: s.pix[i+2], A: s.pix[i+3]}
}

// Image exposes the surface as an *image.RGBA sharing the same backing
// array. Mutations through either view are visible in both.
func (s *Surface) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    s.pix,
		Stride: s.width * 4,
		Rect:   image.Rect(0, 0, s.width, s.height),
	}
}

// Snapshot copies the surface into a new unpremultiplied pixmap.
func (s *Surface) Snapshot() *Pixmap {
	pm := NewPixmap(s.width, s.height)
	for i := 0; i < len(s.pix); i += 4 {
		r, g, b, a := s.pix[i], s.pix[i+1], s.pix[i+2], s.pix[i+3]
		pm.data[i+0], pm.data[i+1], pm.data[i+2] = unpremultiply(r, g, b, a)
		pm.data[i+3] = a
	}
	return pm
}

// unpremultiply converts one premultiplied pixel to straight alpha.
// Fully transparent pixels map to transparent black.
func unpremultiply(r, g, b, a uint8) (uint8, uint8, uint8) {
	if a == 0 {
		return 0, 0, 0
	}
	if a == 255 {
		return r, g, b
	}
	ai := uint32(a)
	return uint8((uint32(r)*255 + ai/2) / ai),
		uint8((uint32(g)*255 + ai/2) / ai),
		uint8((uint32(b)*255 + ai/2) / ai)
}
