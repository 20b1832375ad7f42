package text

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

// Mask rasterizes the shape's outline into a w×h coverage mask.
// The pen position of the glyph is placed at (originX, originY) in mask
// coordinates. Coverage is antialiased; callers that want hard edges
// threshold the result.
//
// A shape without ink yields an all-zero mask.
func (s Shape) Mask(w, h int, originX, originY float64) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 || !s.HasInk() {
		return mask
	}

	r := vector.NewRasterizer(w, h)
	r.DrawOp = draw.Src
	ox, oy := float32(originX), float32(originY)

	open := false
	for _, seg := range s.Segments {
		p := seg.Points
		switch seg.Op {
		case OutlineOpMoveTo:
			if open {
				r.ClosePath()
			}
			r.MoveTo(p[0].X+ox, p[0].Y+oy)
			open = true
		case OutlineOpLineTo:
			r.LineTo(p[0].X+ox, p[0].Y+oy)
		case OutlineOpQuadTo:
			r.QuadTo(p[0].X+ox, p[0].Y+oy, p[1].X+ox, p[1].Y+oy)
		case OutlineOpCubicTo:
			r.CubeTo(p[0].X+ox, p[0].Y+oy, p[1].X+ox, p[1].Y+oy, p[2].X+ox, p[2].Y+oy)
		}
	}
	if open {
		r.ClosePath()
	}

	// The source is uniform, so the sample point is irrelevant.
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}
