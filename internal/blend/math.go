package blend

// div255 divides by 255 with rounding, using the classic shift
// approximation. Exact for all inputs in [0, 255*255].
func div255(v uint32) uint8 {
	v += 128
	return uint8((v + (v >> 8)) >> 8)
}

// mulDiv255 computes a*b/255 with rounding.
func mulDiv255(a, b uint8) uint8 {
	return div255(uint32(a) * uint32(b))
}

// inv255 returns 255-v.
func inv255(v uint8) uint8 {
	return 255 - v
}

// addClamp returns a+b clamped to 255.
func addClamp(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// addSub255 returns a+b-255 clamped to 0.
func addSub255(a, b uint8) uint8 {
	s := int16(a) + int16(b) - 255
	if s < 0 {
		return 0
	}
	return uint8(s)
}
