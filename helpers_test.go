package udfc

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/udfc/text"
)

var errNoGlyph = errors.New("no glyph")

// fakeSource serves fixed shapes. Unknown runes get a square glyph so that
// large selections can be rendered without a font.
type fakeSource struct {
	shapes map[rune]text.Shape
	strict bool
}

func (f fakeSource) Shape(r rune) (text.Shape, error) {
	if s, ok := f.shapes[r]; ok {
		return s, nil
	}
	if f.strict {
		return text.Shape{}, errNoGlyph
	}
	s := squareShape(1, -5, 3, -1)
	s.Rune = r
	return s, nil
}

// squareShape returns a glyph with advance 4, ascent 6 and descent 2 whose
// ink is the rectangle (x0,y0)-(x1,y1) relative to the pen position.
func squareShape(x0, y0, x1, y1 float32) text.Shape {
	pt := func(x, y float32) [3]text.OutlinePoint { return [3]text.OutlinePoint{{X: x, Y: y}} }
	return text.Shape{
		Advance: 4,
		Ascent:  6,
		Descent: 2,
		Ink:     text.Rect{MinX: float64(x0), MinY: float64(y0), MaxX: float64(x1), MaxY: float64(y1)},
		Segments: []text.OutlineSegment{
			{Op: text.OutlineOpMoveTo, Points: pt(x0, y0)},
			{Op: text.OutlineOpLineTo, Points: pt(x1, y0)},
			{Op: text.OutlineOpLineTo, Points: pt(x1, y1)},
			{Op: text.OutlineOpLineTo, Points: pt(x0, y1)},
		},
	}
}

// plainConfig disables every effect and paints opaque black.
func plainConfig() RenderConfig {
	c := DefaultRenderConfig()
	c.Foreground = Black
	return c
}

// goFace returns the embedded Go Regular font at size.
func goFace(t *testing.T, size float64) *text.Face {
	t.Helper()
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("load font: %v", err)
	}
	t.Cleanup(func() { _ = src.Close() })
	return src.Face(size)
}
