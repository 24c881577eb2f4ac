package canvas

import "math"

// Gaussian blur approximated by three box-blur passes, the standard
// filter-effects construction. Pixels outside the buffer count as
// transparent so shadows fade out at layer edges.

// boxSizes returns the three box widths whose repeated application
// approximates a Gaussian with the given standard deviation.
func boxSizes(sigma float64) [3]int {
	const n = 3.0
	wIdeal := math.Sqrt(12*sigma*sigma/n + 1)
	wl := int(math.Floor(wIdeal))
	if wl%2 == 0 {
		wl--
	}
	if wl < 1 {
		wl = 1
	}
	wu := wl + 2
	mIdeal := (12*sigma*sigma - n*float64(wl)*float64(wl) - 4*n*float64(wl) - 3*n) /
		(-4*float64(wl) - 4)
	m := int(math.Round(mIdeal))

	var sizes [3]int
	for i := range sizes {
		if i < m {
			sizes[i] = wl
		} else {
			sizes[i] = wu
		}
	}
	return sizes
}

// blurPremul blurs a premultiplied RGBA buffer in place.
func blurPremul(pix []uint8, w, h int, sigma float64) {
	if sigma <= 0 || w <= 0 || h <= 0 {
		return
	}
	tmp := make([]uint8, len(pix))
	for _, size := range boxSizes(sigma) {
		r := (size - 1) / 2
		if r <= 0 {
			continue
		}
		boxBlurH(pix, tmp, w, h, r)
		boxBlurV(tmp, pix, w, h, r)
	}
}

func boxBlurH(src, dst []uint8, w, h, r int) {
	div := uint32(2*r + 1)
	for y := 0; y < h; y++ {
		row := y * w * 4
		var sr, sg, sb, sa uint32
		for x := -r; x <= r; x++ {
			if x >= 0 && x < w {
				i := row + x*4
				sr += uint32(src[i])
				sg += uint32(src[i+1])
				sb += uint32(src[i+2])
				sa += uint32(src[i+3])
			}
		}
		for x := 0; x < w; x++ {
			i := row + x*4
			dst[i] = uint8(sr / div)
			dst[i+1] = uint8(sg / div)
			dst[i+2] = uint8(sb / div)
			dst[i+3] = uint8(sa / div)

			if in := x + r + 1; in < w {
				j := row + in*4
				sr += uint32(src[j])
				sg += uint32(src[j+1])
				sb += uint32(src[j+2])
				sa += uint32(src[j+3])
			}
			if out := x - r; out >= 0 {
				j := row + out*4
				sr -= uint32(src[j])
				sg -= uint32(src[j+1])
				sb -= uint32(src[j+2])
				sa -= uint32(src[j+3])
			}
		}
	}
}

func boxBlurV(src, dst []uint8, w, h, r int) {
	div := uint32(2*r + 1)
	stride := w * 4
	for x := 0; x < w; x++ {
		col := x * 4
		var sr, sg, sb, sa uint32
		for y := -r; y <= r; y++ {
			if y >= 0 && y < h {
				i := y*stride + col
				sr += uint32(src[i])
				sg += uint32(src[i+1])
				sb += uint32(src[i+2])
				sa += uint32(src[i+3])
			}
		}
		for y := 0; y < h; y++ {
			i := y*stride + col
			dst[i] = uint8(sr / div)
			dst[i+1] = uint8(sg / div)
			dst[i+2] = uint8(sb / div)
			dst[i+3] = uint8(sa / div)

			if in := y + r + 1; in < h {
				j := in*stride + col
				sr += uint32(src[j])
				sg += uint32(src[j+1])
				sb += uint32(src[j+2])
				sa += uint32(src[j+3])
			}
			if out := y - r; out >= 0 {
				j := out*stride + col
				sr -= uint32(src[j])
				sg -= uint32(src[j+1])
				sb -= uint32(src[j+2])
				sa -= uint32(src[j+3])
			}
		}
	}
}
