package text

import (
	"fmt"
	"strings"
)

// Style selects a face within a font family.
type Style uint8

const (
	// StyleRegular is the upright, normal weight face.
	StyleRegular Style = iota

	// StyleBold is the bold, upright face.
	StyleBold

	// StyleItalic is the italic (or oblique), normal weight face.
	StyleItalic

	// StyleBoldItalic is the bold italic face.
	StyleBoldItalic
)

// String returns the conventional subfamily name of the style.
func (s Style) String() string {
	switch s {
	case StyleRegular:
		return "Regular"
	case StyleBold:
		return "Bold"
	case StyleItalic:
		return "Italic"
	case StyleBoldItalic:
		return "Bold Italic"
	default:
		return fmt.Sprintf("Style(%d)", uint8(s))
	}
}

// Bold reports whether the style asks for a bold weight.
func (s Style) Bold() bool { return s == StyleBold || s == StyleBoldItalic }

// Italic reports whether the style asks for an italic face.
func (s Style) Italic() bool { return s == StyleItalic || s == StyleBoldItalic }

// ParseStyle parses a style name such as "bold", "Bold Italic" or "plain".
func ParseStyle(name string) (Style, error) {
	n := strings.ToLower(strings.Join(strings.Fields(name), " "))
	switch n {
	case "", "regular", "plain", "normal", "roman":
		return StyleRegular, nil
	case "bold":
		return StyleBold, nil
	case "italic", "oblique":
		return StyleItalic, nil
	case "bold italic", "bolditalic", "bold oblique", "italic bold":
		return StyleBoldItalic, nil
	}
	return StyleRegular, fmt.Errorf("text: unknown font style %q", name)
}

// Descriptor identifies a font face at a size, the way a user picks it:
// by family name, style and point size. One point renders as one pixel.
type Descriptor struct {
	Family string
	Style  Style
	Size   float64
}

// String formats the descriptor as "Family Style Size".
func (d Descriptor) String() string {
	return fmt.Sprintf("%s %s %g", d.Family, d.Style, d.Size)
}
