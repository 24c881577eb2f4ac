package blend

import "math"

// Separable blend modes. Each channel mixes independently:
//
//	Co = Cs*(1-Da) + Cd*(1-Sa) + Sa*Da*B(Cd/Da, Cs/Sa)
//
// where B operates on unpremultiplied channel values and the result alpha
// follows source-over.

func separableBlend(sr, sg, sb, sa, dr, dg, db, da uint8, b func(s, d uint8) uint8) (uint8, uint8, uint8, uint8) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}
	isa := inv255(sa)
	ida := inv255(da)
	sada := mulDiv255(sa, da)
	mix := func(sc, dc uint8) uint8 {
		blended := b(unmul255(sc, sa), unmul255(dc, da))
		v := uint16(mulDiv255(sc, ida)) + uint16(mulDiv255(dc, isa)) + uint16(mulDiv255(sada, blended))
		if v > 255 {
			return 255
		}
		return uint8(v)
	}
	return mix(sr, dr),
		mix(sg, dg),
		mix(sb, db),
		addClamp(sa, mulDiv255(da, isa))
}

// unmul255 converts a premultiplied channel back to straight alpha.
func unmul255(c, a uint8) uint8 {
	if a == 0 {
		return 0
	}
	v := (uint32(c)*255 + uint32(a)/2) / uint32(a)
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func bMultiply(s, d uint8) uint8 { return mulDiv255(s, d) }

func bScreen(s, d uint8) uint8 {
	return inv255(mulDiv255(inv255(s), inv255(d)))
}

func bHardLight(s, d uint8) uint8 {
	if s <= 127 {
		return div255(2 * uint32(s) * uint32(d))
	}
	return inv255(div255(2 * uint32(inv255(s)) * uint32(inv255(d))))
}

// bOverlay is hard-light with source and backdrop swapped.
func bOverlay(s, d uint8) uint8 { return bHardLight(d, s) }

func bDarken(s, d uint8) uint8 {
	if s < d {
		return s
	}
	return d
}

func bLighten(s, d uint8) uint8 {
	if s > d {
		return s
	}
	return d
}

func bColorDodge(s, d uint8) uint8 {
	if d == 0 {
		return 0
	}
	if s == 255 {
		return 255
	}
	v := uint32(d) * 255 / uint32(255-s)
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func bColorBurn(s, d uint8) uint8 {
	if d == 255 {
		return 255
	}
	if s == 0 {
		return 0
	}
	v := uint32(255-d) * 255 / uint32(s)
	if v > 255 {
		return 0
	}
	return uint8(255 - v)
}

func bSoftLight(s, d uint8) uint8 {
	sf := float64(s) / 255
	df := float64(d) / 255
	var r float64
	if sf <= 0.5 {
		r = df - (1-2*sf)*df*(1-df)
	} else {
		var g float64
		if df <= 0.25 {
			g = ((16*df-12)*df + 4) * df
		} else {
			g = math.Sqrt(df)
		}
		r = df + (2*sf-1)*(g-df)
	}
	return uint8(math.Round(r * 255))
}

func bDifference(s, d uint8) uint8 {
	if s > d {
		return s - d
	}
	return d - s
}

func bExclusion(s, d uint8) uint8 {
	v := uint32(s) + uint32(d) - 2*uint32(mulDiv255(s, d))
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func blendMultiply(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, bMultiply)
}

func blendScreen(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, bScreen)
}

func blendOverlay(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, bOverlay)
}

func blendDarken(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, bDarken)
}

func blendLighten(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, bLighten)
}

func blendColorDodge(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, bColorDodge)
}

func blendColorBurn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, bColorBurn)
}

func blendHardLight(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, bHardLight)
}

func blendSoftLight(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, bSoftLight)
}

func blendDifference(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, bDifference)
}

func blendExclusion(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, bExclusion)
}
