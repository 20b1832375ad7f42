package text

import (
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// OutlinePoint represents a point in a glyph outline, in pixels.
// The origin is the glyph's pen position on the baseline; Y grows downward.
type OutlinePoint struct {
	X, Y float32
}

// OutlineSegment is one drawing command of a glyph contour. Points holds
// the control points followed by the end point: one point for MoveTo and
// LineTo, two for QuadTo, three for CubicTo.
type OutlineSegment struct {
	Op     OutlineOp
	Points [3]OutlinePoint
}

// OutlineOp selects the drawing command of a segment.
type OutlineOp uint8

// Segment commands, in sfnt order.
const (
	OutlineOpMoveTo OutlineOp = iota
	OutlineOpLineTo
	OutlineOpQuadTo
	OutlineOpCubicTo
)

var outlineOpNames = [...]string{"MoveTo", "LineTo", "QuadTo", "CubicTo"}

// String returns the command name.
func (op OutlineOp) String() string {
	if int(op) < len(outlineOpNames) {
		return outlineOpNames[op]
	}
	return "Unknown"
}

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the height of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Empty reports whether the rectangle is empty.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Shape is everything the glyph pipeline needs to know about one character:
// its logical box, its ink bounds and the outline to fill.
type Shape struct {
	// Rune is the character this shape was produced for.
	Rune rune

	// Advance is the horizontal advance width.
	Advance float64

	// Ascent is the distance from the top of the line box to the baseline.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the line
	// box, line gap included.
	Descent float64

	// Ink is the tight bounding box of Segments. It is empty for blank
	// glyphs such as the space.
	Ink Rect

	// Segments is the outline of the glyph.
	Segments []OutlineSegment
}

// Box returns the logical bounding box of the glyph relative to its pen
// position: Advance wide, Ascent+Descent tall, top at -Ascent.
func (s Shape) Box() Rect {
	return Rect{MinX: 0, MinY: -s.Ascent, MaxX: s.Advance, MaxY: s.Descent}
}

// IsEmpty reports whether the shape has no width at all.
func (s Shape) IsEmpty() bool {
	return s.Box().Width() <= 0
}

// HasInk reports whether the outline draws anything.
func (s Shape) HasInk() bool {
	for _, seg := range s.Segments {
		if seg.Op != OutlineOpMoveTo {
			return true
		}
	}
	return false
}

// convertSegments maps sfnt outline segments onto OutlineSegments.
func convertSegments(segs sfnt.Segments) []OutlineSegment {
	if len(segs) == 0 {
		return nil
	}
	out := make([]OutlineSegment, len(segs))
	for i, seg := range segs {
		var op OutlineOp
		n := 1
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			op = OutlineOpMoveTo
		case sfnt.SegmentOpLineTo:
			op = OutlineOpLineTo
		case sfnt.SegmentOpQuadTo:
			op, n = OutlineOpQuadTo, 2
		case sfnt.SegmentOpCubeTo:
			op, n = OutlineOpCubicTo, 3
		}
		out[i].Op = op
		for j := 0; j < n; j++ {
			out[i].Points[j] = OutlinePoint{
				X: fixedToFloat32(seg.Args[j].X),
				Y: fixedToFloat32(seg.Args[j].Y),
			}
		}
	}
	return out
}

// rectFromFixed converts fixed point bounds to a Rect.
func rectFromFixed(r fixed.Rectangle26_6) Rect {
	return Rect{
		MinX: fixedToFloat64(r.Min.X),
		MinY: fixedToFloat64(r.Min.Y),
		MaxX: fixedToFloat64(r.Max.X),
		MaxY: fixedToFloat64(r.Max.Y),
	}
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

func fixedToFloat32(x fixed.Int26_6) float32 {
	return float32(x) / 64.0
}
