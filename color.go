package canvas

import (
	"image/color"
	"strings"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Alpha is straight (unpremultiplied).
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	Transparent = RGBA{}
	Black       = RGBA{A: 1}
	White       = RGBA{R: 1, G: 1, B: 1, A: 1}
)

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// WithAlpha returns the color with its alpha replaced by a.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	// color.Color is alpha-premultiplied; undo that here.
	return RGBA{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
		A: float64(a) / 65535,
	}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without a
// leading '#'. Invalid strings yield opaque black.
func Hex(hex string) RGBA {
	c, _ := parseHexColor(hex)
	return c
}

func parseHexColor(hex string) (RGBA, bool) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	ok := true
	switch len(hex) {
	case 3:
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4:
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) &&
			parseHex(hex[2:3], &b) && parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8:
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) &&
			parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	default:
		ok = false
	}
	if !ok {
		return Black, false
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, true
}

func parseHex(s string, out *uint32) bool {
	var v uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			v = v*16 + uint32(c-'0')
		case c >= 'a' && c <= 'f':
			v = v*16 + uint32(c-'a'+10)
		case c >= 'A' && c <= 'F':
			v = v*16 + uint32(c-'A'+10)
		default:
			return false
		}
	}
	*out = v
	return true
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// ColorParser parses a CSS color string. It returns the parsed color and
// whether parsing succeeded; on failure the caller leaves its prior color
// unchanged. A full CSS value parser is an external collaborator; the
// default implementation covers hex notation and the basic named colors.
type ColorParser func(s string) (RGBA, bool)

// namedColors is the small set of keyword colors understood by the default
// parser. Hosts needing full CSS color syntax inject their own ColorParser.
var namedColors = map[string]RGBA{
	"transparent": Transparent,
	"black":       Black,
	"white":       White,
	"red":         {R: 1, A: 1},
	"green":       {G: 0x80 / 255.0, A: 1},
	"lime":        {G: 1, A: 1},
	"blue":        {B: 1, A: 1},
	"yellow":      {R: 1, G: 1, A: 1},
	"cyan":        {G: 1, B: 1, A: 1},
	"magenta":     {R: 1, B: 1, A: 1},
	"gray":        {R: 0.5, G: 0.5, B: 0.5, A: 1},
}

// DefaultColorParser parses hex colors and a handful of CSS named colors.
func DefaultColorParser(s string) (RGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, true
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s)
	}
	return RGBA{}, false
}
