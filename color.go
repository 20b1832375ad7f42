package udfc

import (
	"fmt"
	"image/color"
	"strings"
)

// Common colors. The values match the classic AWT color constants the
// converter's defaults were chosen from.
var (
	Black     = color.NRGBA{0, 0, 0, 255}
	White     = color.NRGBA{255, 255, 255, 255}
	Red       = color.NRGBA{255, 0, 0, 255}
	Green     = color.NRGBA{0, 255, 0, 255}
	Blue      = color.NRGBA{0, 0, 255, 255}
	Yellow    = color.NRGBA{255, 255, 0, 255}
	Cyan      = color.NRGBA{0, 255, 255, 255}
	Magenta   = color.NRGBA{255, 0, 255, 255}
	Orange    = color.NRGBA{255, 200, 0, 255}
	Pink      = color.NRGBA{255, 175, 175, 255}
	Gray      = color.NRGBA{128, 128, 128, 255}
	DarkGray  = color.NRGBA{64, 64, 64, 255}
	LightGray = color.NRGBA{192, 192, 192, 255}

	Transparent = color.NRGBA{}
)

var namedColors = map[string]color.NRGBA{
	"black":     Black,
	"white":     White,
	"red":       Red,
	"green":     Green,
	"blue":      Blue,
	"yellow":    Yellow,
	"cyan":      Cyan,
	"magenta":   Magenta,
	"orange":    Orange,
	"pink":      Pink,
	"gray":      Gray,
	"grey":      Gray,
	"darkgray":  DarkGray,
	"lightgray": LightGray,
}

// ParseColor parses a color name or a hex string.
// Supports names such as "yellow" or "lightgray" and the hex formats
// "RGB", "RRGGBB" and "RRGGBBAA", with or without a leading '#'.
func ParseColor(s string) (color.NRGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[strings.ReplaceAll(name, " ", "")]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(name, "#")
	var v [4]uint8
	v[3] = 255
	switch len(hex) {
	case 3:
		for i := range 3 {
			d, ok := hexDigit(hex[i])
			if !ok {
				return color.NRGBA{}, fmt.Errorf("udfc: invalid color %q", s)
			}
			v[i] = d * 17
		}
	case 6, 8:
		for i := 0; i < len(hex)/2; i++ {
			hi, ok1 := hexDigit(hex[2*i])
			lo, ok2 := hexDigit(hex[2*i+1])
			if !ok1 || !ok2 {
				return color.NRGBA{}, fmt.Errorf("udfc: invalid color %q", s)
			}
			v[i] = hi<<4 | lo
		}
	default:
		return color.NRGBA{}, fmt.Errorf("udfc: invalid color %q", s)
	}
	return color.NRGBA{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

// FormatColor formats c as "#RRGGBB", or "#RRGGBBAA" when not opaque.
func FormatColor(c color.NRGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// clamp255 restricts a value to [0, 255] and rounds it.
func clamp255(x float64) uint8 {
	if x <= 0 {
		return 0
	}
	if x >= 255 {
		return 255
	}
	return uint8(x + 0.5)
}
