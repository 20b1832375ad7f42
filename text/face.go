package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/udfc/internal/cache"
)

// shapeCacheLimit bounds the number of shapes a Face keeps.
// A full Basic Multilingual Plane build touches each rune once, so the
// cache mainly serves repeated previews.
const shapeCacheLimit = 1024

// Metrics holds face-wide metrics in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the line (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the line (positive).
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64
}

// Height returns the total line height (ascent + descent + line gap).
func (m Metrics) Height() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Face is a font face at a specific size. It produces glyph Shapes.
//
// Face is safe for concurrent use. Shapes returned by a Face share their
// Segments slice with the face cache and must be treated as read-only.
type Face struct {
	source *FontSource
	size   float64
	ppem   fixed.Int26_6
	shapes *cache.Cache[rune, Shape]
}

func newFace(s *FontSource, size float64) *Face {
	return &Face{
		source: s,
		size:   size,
		ppem:   fixed.Int26_6(size*64 + 0.5),
		shapes: cache.New[rune, Shape](shapeCacheLimit),
	}
}

// Size returns the size of this face in points.
func (f *Face) Size() float64 { return f.size }

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource { return f.source }

// Metrics returns the face metrics.
func (f *Face) Metrics() (Metrics, error) {
	sf, err := f.source.sfntFont()
	if err != nil {
		return Metrics{}, err
	}
	var buf sfnt.Buffer
	return f.metrics(sf, &buf)
}

func (f *Face) metrics(sf *sfnt.Font, buf *sfnt.Buffer) (Metrics, error) {
	m, err := sf.Metrics(buf, f.ppem, font.HintingNone)
	if err != nil {
		return Metrics{}, fmt.Errorf("text: metrics: %w", err)
	}
	ascent := fixedToFloat64(m.Ascent)
	descent := fixedToFloat64(m.Descent)
	gap := fixedToFloat64(m.Height) - ascent - descent
	if gap < 0 {
		gap = 0
	}
	return Metrics{Ascent: ascent, Descent: descent, LineGap: gap}, nil
}

// HasGlyph reports whether the font maps r to a glyph other than .notdef.
func (f *Face) HasGlyph(r rune) bool {
	sf, err := f.source.sfntFont()
	if err != nil {
		return false
	}
	var buf sfnt.Buffer
	gid, err := sf.GlyphIndex(&buf, r)
	return err == nil && gid != 0
}

// Shape measures r and loads its outline. Runes the font does not map
// produce the .notdef glyph, as a platform text renderer would.
func (f *Face) Shape(r rune) (Shape, error) {
	if s, ok := f.shapes.Get(r); ok {
		return s, nil
	}

	sf, err := f.source.sfntFont()
	if err != nil {
		return Shape{}, err
	}

	var buf sfnt.Buffer
	m, err := f.metrics(sf, &buf)
	if err != nil {
		return Shape{}, err
	}

	gid, err := sf.GlyphIndex(&buf, r)
	if err != nil {
		return Shape{}, fmt.Errorf("text: glyph index for %U: %w", r, err)
	}
	advance, err := sf.GlyphAdvance(&buf, gid, f.ppem, font.HintingNone)
	if err != nil {
		return Shape{}, fmt.Errorf("text: advance for %U: %w", r, err)
	}
	segs, err := sf.LoadGlyph(&buf, gid, f.ppem, nil)
	if err != nil {
		return Shape{}, fmt.Errorf("text: outline for %U: %w", r, err)
	}

	s := Shape{
		Rune:     r,
		Advance:  fixedToFloat64(advance),
		Ascent:   m.Ascent,
		Descent:  m.Descent + m.LineGap,
		Segments: convertSegments(segs),
	}
	if len(segs) > 0 {
		s.Ink = rectFromFixed(segs.Bounds())
	}

	f.shapes.Set(r, s)
	return s, nil
}
