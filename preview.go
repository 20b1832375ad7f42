package udfc

import (
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/text/unicode/norm"
)

// Preview renders every character of s and lays the rasters out left to
// right, top aligned, with no gap. The result is as wide as the sum of the
// glyph widths and as tall as the tallest glyph.
//
// The text is NFC normalized first, so a base letter followed by a
// combining mark previews as the precomposed character when one exists.
// Preview returns ErrEmptyInput for empty text. It never touches an archive.
func Preview(src GlyphSource, s string, cfg RenderConfig) (*Raster, error) {
	s = norm.NFC.String(s)
	if s == "" {
		return nil, ErrEmptyInput
	}

	var glyphs []*Raster
	var width, height int
	for _, r := range s {
		g, err := Render(src, r, cfg)
		if err != nil {
			return nil, err
		}
		glyphs = append(glyphs, g)
		width += g.Width()
		height = max(height, g.Height())
	}

	out := NewRaster(width, height)
	x := 0
	for _, g := range glyphs {
		blit(out.rgba, g, x)
		x += g.Width()
	}
	Logger().Debug("preview composed", "glyphs", len(glyphs), "width", width, "height", height)
	return out, nil
}

// ScaleImage enlarges img by an integer factor using nearest neighbor
// sampling, keeping pixel edges sharp. Factors below 2 return img as is.
func ScaleImage(img image.Image, factor int) image.Image {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Rect, img, b, xdraw.Src, nil)
	return dst
}

// blit copies g into dst with its top left corner at (x, 0). Quantized
// glyphs are expanded through their palette.
func blit(dst *image.NRGBA, g *Raster, x int) {
	if !g.Indexed() {
		rowLen := g.Width() * 4
		for y := range g.Height() {
			so := g.rgba.PixOffset(0, y)
			copy(dst.Pix[dst.PixOffset(x, y):], g.rgba.Pix[so:so+rowLen])
		}
		return
	}
	for y := range g.Height() {
		for gx := range g.Width() {
			dst.SetNRGBA(x+gx, y, g.NRGBAAt(gx, y))
		}
	}
}
