package udfc

import (
	"image"
	"image/color"
	"math"
)

// Index returns the palette index for c. Transparent colors map to
// entry 0; anything else maps to the nearest opaque entry by squared RGB
// distance, the lowest index winning ties.
func (p *Palette) Index(c color.NRGBA) uint8 {
	if c.A == 0 || len(p.colors) == 1 {
		return 0
	}
	best, bestDist := 1, math.MaxInt
	for i := 1; i < len(p.colors); i++ {
		e := p.colors[i].(color.NRGBA)
		dr := int(c.R) - int(e.R)
		dg := int(c.G) - int(e.G)
		db := int(c.B) - int(e.B)
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			best, bestDist = i, d
			if d == 0 {
				break
			}
		}
	}
	return uint8(best)
}

// quantize maps img onto p.
func quantize(img *image.NRGBA, p *Palette) *image.Paletted {
	b := img.Bounds()
	out := image.NewPaletted(b, p.ColorPalette())
	memo := make(map[color.NRGBA]uint8)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			if c.A == 0 {
				// Hidden channels of transparent pixels are irrelevant.
				c = color.NRGBA{}
			}
			idx, ok := memo[c]
			if !ok {
				idx = p.Index(c)
				memo[c] = idx
			}
			out.SetColorIndex(x, y, idx)
		}
	}
	return out
}
