// Package blend implements pixel compositing for premultiplied RGBA bytes.
//
// A Func combines one source pixel with one destination pixel and returns
// the composited result. All inputs and outputs are premultiplied by alpha.
// Modes mirror the canvas globalCompositeOperation operator set: the twelve
// Porter-Duff operators, the separable and non-separable blend modes, and
// the two additive plus operators.
package blend

// Mode selects a compositing operator.
type Mode uint8

const (
	Normal Mode = iota // source-over
	Multiply
	Screen
	Overlay
	Darken
	Lighten
	ColorDodge
	ColorBurn
	HardLight
	SoftLight
	Difference
	Exclusion
	Hue
	Saturation
	Color
	Luminosity
	Clear
	Copy
	SourceOver
	DestinationOver
	SourceIn
	DestinationIn
	SourceOut
	DestinationOut
	SourceAtop
	DestinationAtop
	Xor
	Lighter
	PlusDarker
	PlusLighter
)

// Func composites a premultiplied source pixel over a premultiplied
// destination pixel.
type Func func(sr, sg, sb, sa, dr, dg, db, da uint8) (r, g, b, a uint8)

var funcs = [...]Func{
	Normal:          blendSourceOver,
	Multiply:        blendMultiply,
	Screen:          blendScreen,
	Overlay:         blendOverlay,
	Darken:          blendDarken,
	Lighten:         blendLighten,
	ColorDodge:      blendColorDodge,
	ColorBurn:       blendColorBurn,
	HardLight:       blendHardLight,
	SoftLight:       blendSoftLight,
	Difference:      blendDifference,
	Exclusion:       blendExclusion,
	Hue:             blendHue,
	Saturation:      blendSaturation,
	Color:           blendColor,
	Luminosity:      blendLuminosity,
	Clear:           blendClear,
	Copy:            blendCopy,
	SourceOver:      blendSourceOver,
	DestinationOver: blendDestinationOver,
	SourceIn:        blendSourceIn,
	DestinationIn:   blendDestinationIn,
	SourceOut:       blendSourceOut,
	DestinationOut:  blendDestinationOut,
	SourceAtop:      blendSourceAtop,
	DestinationAtop: blendDestinationAtop,
	Xor:             blendXor,
	Lighter:         blendLighter,
	PlusDarker:      blendPlusDarker,
	PlusLighter:     blendLighter,
}

// Get returns the compositing function for mode. Unknown modes fall back
// to source-over.
func Get(mode Mode) Func {
	if int(mode) < len(funcs) {
		if f := funcs[mode]; f != nil {
			return f
		}
	}
	return blendSourceOver
}

// Unbounded reports whether mode affects destination pixels the source does
// not cover. For these operators a fully transparent source still changes
// the destination, so the caller must composite the whole clip region, not
// just the painted area.
func Unbounded(mode Mode) bool {
	switch mode {
	case Clear, Copy, SourceIn, DestinationIn, SourceOut, DestinationAtop:
		return true
	}
	return false
}
