package udfc

import "image/color"

// verticalGradient is a two-stop gradient along the y axis. Rows above y0
// take the first stop and rows below y1 the second (pad extension).
type verticalGradient struct {
	from, to color.NRGBA
	y0, y1   float64
}

// At returns the gradient color for pixel row y, sampled at the row center.
func (g verticalGradient) At(y int) color.NRGBA {
	if g.y1 <= g.y0 {
		return g.from
	}
	t := clamp01((float64(y) + 0.5 - g.y0) / (g.y1 - g.y0))
	return lerpNRGBA(g.from, g.to, t)
}

// lerpNRGBA interpolates every channel of two colors.
func lerpNRGBA(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return clamp255(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.NRGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
