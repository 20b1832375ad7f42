package udfc

import (
	"image/color"

	"github.com/gogpu/udfc/text"
)

// RenderConfig holds every parameter of the glyph pipeline.
//
// Outline and shadow are independent effects and compose: the shadow is
// cast by the glyph and its outline together.
type RenderConfig struct {
	// Font selects the face. Size is in points; one point is one pixel.
	Font text.Descriptor

	// Multiplier is the base padding around each glyph. It is scaled by
	// the outline and shadow effects, see Padding. Must be > 0.
	Multiplier float64

	// Foreground is the fill color, or the top stop of the gradient.
	Foreground color.NRGBA

	// Background is the bottom stop of the gradient. Unused otherwise.
	Background color.NRGBA

	// OutlineColor and OutlineWidth configure the outline effect.
	// A width of 0 disables it.
	OutlineColor color.NRGBA
	OutlineWidth int

	// ShadowColor and ShadowAngle configure the drop shadow. The angle is
	// in degrees, 0 points right and 90 points down.
	ShadowColor color.NRGBA
	ShadowAngle int

	Gradient  bool
	Antialias bool
	Shadow    bool

	// Palette enables quantization when non-nil. Palettes are immutable,
	// so a config may be shared between goroutines.
	Palette *Palette
}

// DefaultRenderConfig returns the converter defaults: Courier New,
// regular, 12 points, yellow on cyan, blue outline of width 0,
// black shadow at 45 degrees, every effect off and no palette.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Font:         text.Descriptor{Family: "Courier New", Style: text.StyleRegular, Size: 12},
		Multiplier:   1,
		Foreground:   Yellow,
		Background:   Cyan,
		OutlineColor: Blue,
		OutlineWidth: 0,
		ShadowColor:  Black,
		ShadowAngle:  45,
	}
}

// Validate checks the numeric fields. It returns a *ConfigError for the
// first invalid one.
func (c RenderConfig) Validate() error {
	switch {
	case c.Font.Size <= 0:
		return &ConfigError{Field: "font size", Value: c.Font.Size, Reason: "must be positive"}
	case !(c.Multiplier > 0):
		return &ConfigError{Field: "multiplier", Value: c.Multiplier, Reason: "must be positive"}
	case c.OutlineWidth < 0:
		return &ConfigError{Field: "outline width", Value: c.OutlineWidth, Reason: "must not be negative"}
	case c.ShadowAngle < 0 || c.ShadowAngle > 359:
		return &ConfigError{Field: "shadow angle", Value: c.ShadowAngle, Reason: "must be in 0..359"}
	}
	return nil
}

// Padding returns the space reserved around the glyph box for effects.
// Half of it is placed on each side.
func (c RenderConfig) Padding() float64 {
	p := c.Multiplier
	if c.OutlineWidth > 0 {
		p *= 2 * float64(c.OutlineWidth)
	}
	if c.Shadow {
		p *= 2
	}
	return p
}
