package blend

// Non-separable blend modes. These operate on the full color triple in
// normalized float space, recombining luminosity and saturation between
// source and backdrop per the CSS compositing model.

type rgbF struct {
	r, g, b float64
}

func lum(c rgbF) float64 {
	return 0.3*c.r + 0.59*c.g + 0.11*c.b
}

func clipColor(c rgbF) rgbF {
	l := lum(c)
	n := min3(c.r, c.g, c.b)
	x := max3(c.r, c.g, c.b)
	if n < 0 {
		c.r = l + (c.r-l)*l/(l-n)
		c.g = l + (c.g-l)*l/(l-n)
		c.b = l + (c.b-l)*l/(l-n)
	}
	if x > 1 {
		c.r = l + (c.r-l)*(1-l)/(x-l)
		c.g = l + (c.g-l)*(1-l)/(x-l)
		c.b = l + (c.b-l)*(1-l)/(x-l)
	}
	return c
}

func setLum(c rgbF, l float64) rgbF {
	d := l - lum(c)
	c.r += d
	c.g += d
	c.b += d
	return clipColor(c)
}

func sat(c rgbF) float64 {
	return max3(c.r, c.g, c.b) - min3(c.r, c.g, c.b)
}

// setSat rescales the color so its saturation becomes s, keeping the
// ordering of the three channels.
func setSat(c rgbF, s float64) rgbF {
	mn := min3(c.r, c.g, c.b)
	mx := max3(c.r, c.g, c.b)
	out := rgbF{}
	if mx > mn {
		scale := func(v float64) float64 { return (v - mn) * s / (mx - mn) }
		out.r = scale(c.r)
		out.g = scale(c.g)
		out.b = scale(c.b)
	}
	return out
}

func min3(a, b, c float64) float64 {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c float64) float64 {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}

func bfHue(s, d rgbF) rgbF        { return setLum(setSat(s, sat(d)), lum(d)) }
func bfSaturation(s, d rgbF) rgbF { return setLum(setSat(d, sat(s)), lum(d)) }
func bfColor(s, d rgbF) rgbF      { return setLum(s, lum(d)) }
func bfLuminosity(s, d rgbF) rgbF { return setLum(d, lum(s)) }

func nonSeparableBlend(sr, sg, sb, sa, dr, dg, db, da uint8, b func(s, d rgbF) rgbF) (uint8, uint8, uint8, uint8) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}
	src := rgbF{
		float64(unmul255(sr, sa)) / 255,
		float64(unmul255(sg, sa)) / 255,
		float64(unmul255(sb, sa)) / 255,
	}
	dst := rgbF{
		float64(unmul255(dr, da)) / 255,
		float64(unmul255(dg, da)) / 255,
		float64(unmul255(db, da)) / 255,
	}
	blended := b(src, dst)
	toByte := func(v float64) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return separableBlendTriple(sa, da,
		sr, dr, toByte(blended.r),
		sg, dg, toByte(blended.g),
		sb, db, toByte(blended.b))
}

// separableBlendTriple applies the general compositing mix with
// precomputed blended channel values.
func separableBlendTriple(sa, da, sr, dr, br, sg, dg, bg, sb, db, bb uint8) (uint8, uint8, uint8, uint8) {
	isa := inv255(sa)
	ida := inv255(da)
	sada := mulDiv255(sa, da)
	mix := func(sc, dc, bc uint8) uint8 {
		v := uint16(mulDiv255(sc, ida)) + uint16(mulDiv255(dc, isa)) + uint16(mulDiv255(sada, bc))
		if v > 255 {
			return 255
		}
		return uint8(v)
	}
	return mix(sr, dr, br),
		mix(sg, dg, bg),
		mix(sb, db, bb),
		addClamp(sa, mulDiv255(da, isa))
}

func blendHue(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return nonSeparableBlend(sr, sg, sb, sa, dr, dg, db, da, bfHue)
}

func blendSaturation(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return nonSeparableBlend(sr, sg, sb, sa, dr, dg, db, da, bfSaturation)
}

func blendColor(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return nonSeparableBlend(sr, sg, sb, sa, dr, dg, db, da, bfColor)
}

func blendLuminosity(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return nonSeparableBlend(sr, sg, sb, sa, dr, dg, db, da, bfLuminosity)
}
