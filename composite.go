package canvas

// CompositeOp is a compositing and blending operator combining new paint
// with existing pixels. The string forms match the values accepted by the
// canvas globalCompositeOperation attribute.
type CompositeOp int

const (
	CompositeNormal CompositeOp = iota
	CompositeMultiply
	CompositeScreen
	CompositeOverlay
	CompositeDarken
	CompositeLighten
	CompositeColorDodge
	CompositeColorBurn
	CompositeHardLight
	CompositeSoftLight
	CompositeDifference
	CompositeExclusion
	CompositeHue
	CompositeSaturation
	CompositeColor
	CompositeLuminosity
	CompositeClear
	CompositeCopy
	CompositeSourceOver
	CompositeDestinationOver
	CompositeSourceIn
	CompositeDestinationIn
	CompositeSourceOut
	CompositeDestinationOut
	CompositeSourceAtop
	CompositeDestinationAtop
	CompositeXor
	CompositeLighter
	CompositePlusDarker
	CompositePlusLighter
)

var compositeOpNames = []string{
	"normal",
	"multiply",
	"screen",
	"overlay",
	"darken",
	"lighten",
	"color-dodge",
	"color-burn",
	"hard-light",
	"soft-light",
	"difference",
	"exclusion",
	"hue",
	"saturation",
	"color",
	"luminosity",
	"clear",
	"copy",
	"source-over",
	"destination-over",
	"source-in",
	"destination-in",
	"source-out",
	"destination-out",
	"source-atop",
	"destination-atop",
	"xor",
	"lighter",
	"plus-darker",
	"plus-lighter",
}

// String returns the canvas attribute name of the operator.
// Every valid operator maps back to exactly one name; an out-of-range
// value indicates a defect in this package and panics.
func (op CompositeOp) String() string {
	if op < 0 || int(op) >= len(compositeOpNames) {
		panic("canvas: invalid CompositeOp")
	}
	return compositeOpNames[op]
}

// ParseCompositeOp maps a canvas operator name to its CompositeOp.
// Unknown names report ok=false; callers leave their current operator
// unchanged in that case.
func ParseCompositeOp(name string) (CompositeOp, bool) {
	for i, n := range compositeOpNames {
		if n == name {
			return CompositeOp(i), true
		}
	}
	return CompositeNormal, false
}
