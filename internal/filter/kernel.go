package filter

import "image"

// Weights of the fixed 3x3 blur kernel used for shadow sampling.
// The nine weights sum to 1.0 (within rounding of the published constants).
const (
	CornerWeight = 0.077847
	EdgeWeight   = 0.123317
	CenterWeight = 0.195346
)

// ShadowThreshold is the minimum blurred alpha fraction that casts a shadow.
// It equals CenterWeight, so a lone opaque pixel still clears it.
const ShadowThreshold = CenterWeight

// kernel3x3 is laid out row-major, offsets -1..1 on both axes.
var kernel3x3 = [3][3]float64{
	{CornerWeight, EdgeWeight, CornerWeight},
	{EdgeWeight, CenterWeight, EdgeWeight},
	{CornerWeight, EdgeWeight, CornerWeight},
}

// Sample is a color sample. Each channel is a fraction in [0, 1].
type Sample struct {
	R, G, B, A float64
}

// BoxAverage averages every channel over the square neighborhood of side
// 2*radius+1 centered at (x, y). Neighbor coordinates are clamped to the
// image bounds, so edge pixels are repeated rather than treated as empty.
//
// For radius <= 0 the sample is the pixel itself.
func BoxAverage(img *image.NRGBA, x, y, radius int) Sample {
	if radius < 0 {
		radius = 0
	}
	b := img.Rect
	var sr, sg, sb, sa int
	for j := -radius; j <= radius; j++ {
		py := clampInt(y+j, b.Min.Y, b.Max.Y-1)
		for i := -radius; i <= radius; i++ {
			px := clampInt(x+i, b.Min.X, b.Max.X-1)
			o := img.PixOffset(px, py)
			sr += int(img.Pix[o+0])
			sg += int(img.Pix[o+1])
			sb += int(img.Pix[o+2])
			sa += int(img.Pix[o+3])
		}
	}
	side := 2*radius + 1
	n := float64(side*side) * 255
	return Sample{
		R: float64(sr) / n,
		G: float64(sg) / n,
		B: float64(sb) / n,
		A: float64(sa) / n,
	}
}

// Gaussian3x3 applies the fixed 3x3 blur kernel at (x, y), clamping
// neighbor coordinates to the image bounds.
func Gaussian3x3(img *image.NRGBA, x, y int) Sample {
	b := img.Rect
	var s Sample
	for j := -1; j <= 1; j++ {
		py := clampInt(y+j, b.Min.Y, b.Max.Y-1)
		for i := -1; i <= 1; i++ {
			px := clampInt(x+i, b.Min.X, b.Max.X-1)
			w := kernel3x3[j+1][i+1]
			o := img.PixOffset(px, py)
			s.R += w * (float64(img.Pix[o+0]) / 255)
			s.G += w * (float64(img.Pix[o+1]) / 255)
			s.B += w * (float64(img.Pix[o+2]) / 255)
			s.A += w * (float64(img.Pix[o+3]) / 255)
		}
	}
	return s
}

// clampInt restricts v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
