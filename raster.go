package udfc

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// Raster is a rendered glyph or preview. It holds NRGBA pixels, or
// palette indices once quantized. A Raster implements image.Image.
type Raster struct {
	rgba    *image.NRGBA
	indexed *image.Paletted
}

// NewRaster creates a transparent NRGBA raster. Dimensions below 1 are
// raised to 1.
func NewRaster(width, height int) *Raster {
	return &Raster{rgba: image.NewNRGBA(image.Rect(0, 0, max(width, 1), max(height, 1)))}
}

// Width returns the width of the raster.
func (r *Raster) Width() int { return r.Bounds().Dx() }

// Height returns the height of the raster.
func (r *Raster) Height() int { return r.Bounds().Dy() }

// Indexed reports whether the raster was quantized to a palette.
func (r *Raster) Indexed() bool { return r.indexed != nil }

// Bounds implements the image.Image interface.
func (r *Raster) Bounds() image.Rectangle {
	if r.indexed != nil {
		return r.indexed.Rect
	}
	return r.rgba.Rect
}

// ColorModel implements the image.Image interface.
func (r *Raster) ColorModel() color.Model {
	if r.indexed != nil {
		return r.indexed.Palette
	}
	return color.NRGBAModel
}

// At implements the image.Image interface.
func (r *Raster) At(x, y int) color.Color {
	return r.NRGBAAt(x, y)
}

// NRGBAAt returns the color of a pixel. Out of bounds pixels are
// transparent.
func (r *Raster) NRGBAAt(x, y int) color.NRGBA {
	if !(image.Point{x, y}.In(r.Bounds())) {
		return color.NRGBA{}
	}
	if r.indexed != nil {
		return r.indexed.Palette[r.indexed.ColorIndexAt(x, y)].(color.NRGBA)
	}
	return r.rgba.NRGBAAt(x, y)
}

// ColorIndexAt returns the palette index of a pixel of a quantized raster.
// It returns 0 for NRGBA rasters.
func (r *Raster) ColorIndexAt(x, y int) uint8 {
	if r.indexed == nil {
		return 0
	}
	return r.indexed.ColorIndexAt(x, y)
}

// Image returns the underlying *image.NRGBA or *image.Paletted.
func (r *Raster) Image() image.Image {
	if r.indexed != nil {
		return r.indexed
	}
	return r.rgba
}

// EncodePNG writes the raster as PNG. Quantized rasters are written as
// paletted PNGs.
func (r *Raster) EncodePNG(w io.Writer) error {
	return png.Encode(w, r.Image())
}

// SavePNG saves the raster to a PNG file.
func (r *Raster) SavePNG(path string) error {
	return SavePNG(path, r.Image())
}

// SavePNG encodes img as a PNG file at path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// snapshot returns a copy of the NRGBA pixels for effects that must read
// the state before they started writing.
func (r *Raster) snapshot() *image.NRGBA {
	s := image.NewNRGBA(r.rgba.Rect)
	copy(s.Pix, r.rgba.Pix)
	return s
}
