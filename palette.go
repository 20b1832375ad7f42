package udfc

import (
	"fmt"
	"image/color"
	"io"
	"os"
)

// PaletteTableSize is the size of a raw palette table: 256 RGB triplets.
const PaletteTableSize = 768

// Palette is an immutable color table of 1 to 256 entries used to quantize
// rendered glyphs. Entry 0 always has alpha 0 and stands for transparency;
// every other entry is opaque.
type Palette struct {
	name   string
	colors color.Palette
}

// NewPalette builds a palette from colors. Entry 0 is made transparent
// and the remaining entries opaque.
func NewPalette(name string, colors []color.NRGBA) (*Palette, error) {
	if len(colors) == 0 || len(colors) > 256 {
		return nil, fmt.Errorf("%w: %d colors", ErrPaletteSize, len(colors))
	}
	p := &Palette{name: name, colors: make(color.Palette, len(colors))}
	for i, c := range colors {
		c.A = 255
		if i == 0 {
			c.A = 0
		}
		p.colors[i] = c
	}
	return p, nil
}

// ReadPalette reads a 768 byte RGB table.
func ReadPalette(name string, r io.Reader) (*Palette, error) {
	buf, err := io.ReadAll(io.LimitReader(r, PaletteTableSize+1))
	if err != nil {
		return nil, fmt.Errorf("udfc: read palette %s: %w", name, err)
	}
	if len(buf) != PaletteTableSize {
		return nil, fmt.Errorf("%w: %s is not %d bytes", ErrPaletteSize, name, PaletteTableSize)
	}
	colors := make([]color.NRGBA, PaletteTableSize/3)
	for i := range colors {
		colors[i] = color.NRGBA{R: buf[3*i], G: buf[3*i+1], B: buf[3*i+2]}
	}
	return NewPalette(name, colors)
}

// LoadPaletteFile reads a palette table from a file.
func LoadPaletteFile(path string) (*Palette, error) {
	// #nosec G304 -- palette path is provided by the user
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("udfc: open palette: %w", err)
	}
	defer f.Close()
	return ReadPalette(path, f)
}

// RGBCube6 returns the 64 color palette with 2 bits per channel.
func RGBCube6() *Palette {
	colors := make([]color.NRGBA, 0, 64)
	for r := range 4 {
		for g := range 4 {
			for b := range 4 {
				colors = append(colors, color.NRGBA{R: level2(r), G: level2(g), B: level2(b)})
			}
		}
	}
	p, _ := NewPalette("6-bit RGB", colors)
	return p
}

// RGBCube8 returns the 256 color palette with 3 bits for red and green
// and 2 bits for blue.
func RGBCube8() *Palette {
	colors := make([]color.NRGBA, 0, 256)
	for r := range 8 {
		for g := range 8 {
			for b := range 4 {
				colors = append(colors, color.NRGBA{R: level3(r), G: level3(g), B: level2(b)})
			}
		}
	}
	p, _ := NewPalette("8-bit RGB", colors)
	return p
}

// level2 spreads a 2 bit channel value over 0..255.
func level2(c int) uint8 { return uint8(min(4*(c<<6)/3, 255)) }

// level3 spreads a 3 bit channel value over 0..255.
func level3(c int) uint8 { return uint8(min(8*(c<<5)/7, 255)) }

// Name returns the palette name.
func (p *Palette) Name() string { return p.name }

// Len returns the number of entries.
func (p *Palette) Len() int { return len(p.colors) }

// At returns entry i.
func (p *Palette) At(i int) color.NRGBA {
	return p.colors[i].(color.NRGBA)
}

// Colors returns a copy of the entries.
func (p *Palette) Colors() []color.NRGBA {
	out := make([]color.NRGBA, len(p.colors))
	for i := range out {
		out[i] = p.At(i)
	}
	return out
}

// ColorPalette returns the palette as a color.Palette for image.Paletted.
// The returned slice must not be modified.
func (p *Palette) ColorPalette() color.Palette { return p.colors }
