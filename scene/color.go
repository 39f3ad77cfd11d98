package scene

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB color with components in [0,1]. It can be constructed
// from numeric 0xRRGGBB input or from a string (hex notation or a small set
// of common names), mirroring the flexible color inputs accepted by node
// spec property maps.
type Color struct {
	R, G, B float64
}

var namedColors = map[string]Color{
	"white":   {1, 1, 1},
	"black":   {0, 0, 0},
	"red":     {1, 0, 0},
	"green":   {0, 1, 0},
	"blue":    {0, 0, 1},
	"yellow":  {1, 1, 0},
	"cyan":    {0, 1, 1},
	"magenta": {1, 0, 1},
	"gray":    {0.5, 0.5, 0.5},
}

// ColorFromUint builds a Color from a packed 0xRRGGBB integer.
func ColorFromUint(v uint32) Color {
	return Color{
		R: float64((v>>16)&0xff) / 255,
		G: float64((v>>8)&0xff) / 255,
		B: float64(v&0xff) / 255,
	}
}

// ColorFromHex parses hex notation such as "#ff8800", "ff8800" or "#f80".
func ColorFromHex(s string) (Color, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	return Color{R: c.R, G: c.G, B: c.B}, nil
}

// NewColor converts an arbitrary value to a Color. Numeric values are
// treated as packed 0xRRGGBB; strings are tried as a color name and then as
// hex notation. The second return value reports whether the conversion
// succeeded.
func NewColor(v any) (Color, bool) {
	switch val := v.(type) {
	case Color:
		return val, true
	case uint32:
		return ColorFromUint(val), true
	case int:
		return ColorFromUint(uint32(val)), true
	case int64:
		return ColorFromUint(uint32(val)), true
	case uint64:
		return ColorFromUint(uint32(val)), true
	case float64:
		return ColorFromUint(uint32(val)), true
	case string:
		if c, ok := namedColors[strings.ToLower(val)]; ok {
			return c, true
		}
		c, err := ColorFromHex(val)
		if err != nil {
			return Color{}, false
		}
		return c, true
	default:
		return Color{}, false
	}
}

// Hex returns the color in "#rrggbb" notation.
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Hex()
}
