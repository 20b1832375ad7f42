package udfc

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"golang.org/x/text/unicode/runenames"

	"github.com/gogpu/udfc/internal/filter"
	"github.com/gogpu/udfc/text"
)

// GlyphSource produces glyph shapes for a fixed font and size.
// *text.Face implements it.
type GlyphSource interface {
	Shape(r rune) (text.Shape, error)
}

// Verify at compile time that text.Face is a GlyphSource.
var _ GlyphSource = (*text.Face)(nil)

// coverageThreshold is the coverage at which a pixel counts as inside the
// glyph when antialiasing is off.
const coverageThreshold = 128

// Render draws r into a new raster sized to the glyph box plus effect
// padding, then applies the enabled effects in order: antialias
// premultiply, outline, shadow, palette quantization.
//
// Render only reads cfg. A character without width yields a 1×1
// transparent raster.
func Render(src GlyphSource, r rune, cfg RenderConfig) (*Raster, error) {
	shape, err := src.Shape(r)
	if err != nil {
		return nil, fmt.Errorf("udfc: shape %U: %w", r, err)
	}

	var out *Raster
	if shape.IsEmpty() {
		out = NewRaster(1, 1)
	} else {
		out = renderShape(shape, cfg)
	}
	if cfg.Palette != nil {
		out.indexed = quantize(out.rgba, cfg.Palette)
		out.rgba = nil
	}

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("glyph rendered",
			"rune", fmt.Sprintf("%U", r),
			"name", runenames.Name(r),
			"width", out.Width(),
			"height", out.Height())
	}
	return out, nil
}

func renderShape(shape text.Shape, cfg RenderConfig) *Raster {
	pad := cfg.Padding()
	box := shape.Box()
	w := int(math.Round(box.Width()+pad)) + 1
	h := int(math.Round(box.Height()+pad)) + 1
	out := NewRaster(w, h)

	// Top of the box at y=0, shifted by half the padding on both axes.
	ox := 0.5*pad - box.MinX
	oy := 0.5*pad + shape.Ascent

	fillGlyph(out, shape, cfg, ox, oy)
	if cfg.Antialias {
		premultiply(out)
	}
	if cfg.OutlineWidth > 0 {
		drawOutline(out, cfg.OutlineWidth, cfg.OutlineColor)
	}
	if cfg.Shadow {
		drawShadow(out, cfg.ShadowAngle, cfg.ShadowColor)
	}
	return out
}

// fillGlyph paints the glyph coverage with the foreground color or the
// foreground to background gradient spanning the glyph ink.
func fillGlyph(out *Raster, shape text.Shape, cfg RenderConfig, ox, oy float64) {
	w, h := out.Width(), out.Height()
	mask := shape.Mask(w, h, ox, oy)

	grad := verticalGradient{
		from: cfg.Foreground,
		to:   cfg.Background,
		y0:   oy + shape.Ink.MinY,
		y1:   oy + shape.Ink.MaxY,
	}

	img := out.rgba
	for y := range h {
		fill := cfg.Foreground
		if cfg.Gradient {
			fill = grad.At(y)
		}
		for x := range w {
			cov := mask.AlphaAt(x, y).A
			if !cfg.Antialias {
				if cov >= coverageThreshold {
					cov = 255
				} else {
					cov = 0
				}
			}
			if cov == 0 {
				continue
			}
			c := fill
			c.A = uint8((uint32(fill.A)*uint32(cov) + 127) / 255)
			img.SetNRGBA(x, y, c)
		}
	}
}

// premultiply scales the color of every visible pixel by its alpha so that
// soft edges darken instead of fringing when composited over dark effects.
func premultiply(out *Raster) {
	pix := out.rgba.Pix
	for i := 0; i < len(pix); i += 4 {
		a := uint32(pix[i+3])
		if a == 0 {
			continue
		}
		pix[i+0] = uint8((uint32(pix[i+0])*a + 127) / 255)
		pix[i+1] = uint8((uint32(pix[i+1])*a + 127) / 255)
		pix[i+2] = uint8((uint32(pix[i+2])*a + 127) / 255)
	}
}

// drawOutline turns every empty pixel within width of visible content
// into an opaque outline pixel.
func drawOutline(out *Raster, width int, c color.NRGBA) {
	snap := out.snapshot()
	c.A = 255
	b := snap.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if snap.NRGBAAt(x, y).A != 0 {
				continue
			}
			if filter.BoxAverage(snap, x, y, width).A > 0 {
				out.rgba.SetNRGBA(x, y, c)
			}
		}
	}
}

// drawShadow casts a one pixel offset shadow in the direction of angle
// (degrees, y down). Only empty pixels receive shadow.
func drawShadow(out *Raster, angle int, c color.NRGBA) {
	snap := out.snapshot()
	rad := float64(angle) * math.Pi / 180
	dx := int(math.Round(math.Cos(rad)))
	dy := int(math.Round(math.Sin(rad)))

	b := snap.Rect
	for py := b.Min.Y; py < b.Max.Y; py++ {
		ty := min(max(py+dy, b.Min.Y), b.Max.Y-1)
		for px := b.Min.X; px < b.Max.X; px++ {
			tx := min(max(px+dx, b.Min.X), b.Max.X-1)
			if snap.NRGBAAt(tx, ty).A != 0 {
				continue
			}
			s := filter.Gaussian3x3(snap, px, py)
			if s.A < filter.ShadowThreshold {
				continue
			}
			k := math.Sqrt(s.A)
			out.rgba.SetNRGBA(tx, ty, color.NRGBA{
				R: clamp255(float64(c.R) * k),
				G: clamp255(float64(c.G) * k),
				B: clamp255(float64(c.B) * k),
				A: 255,
			})
		}
	}
}

// Renderer renders glyphs of one source with one configuration.
type Renderer struct {
	src GlyphSource
	cfg RenderConfig
}

// NewRenderer validates cfg and returns a Renderer.
func NewRenderer(src GlyphSource, cfg RenderConfig) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{src: src, cfg: cfg}, nil
}

// Config returns the render configuration.
func (r *Renderer) Config() RenderConfig { return r.cfg }

// Render renders one character.
func (r *Renderer) Render(ch rune) (*Raster, error) {
	return Render(r.src, ch, r.cfg)
}
