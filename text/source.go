package text

import (
	"fmt"
	"os"
	"slices"
	"sync"

	"golang.org/x/image/font/sfnt"
)

// FontSource is a parsed font file, or one face of a collection. Faces of
// any size are created from it with Face.
//
// A FontSource is safe for concurrent use and must be used by pointer;
// methods panic on a copied value.
type FontSource struct {
	addr *FontSource // self pointer, see copyCheck

	data []byte
	font *sfnt.Font
	name string

	mu     sync.RWMutex
	closed bool
}

// NewFontSource creates a FontSource from font data (TTF, OTF, TTC or OTC).
// data is copied, so the caller may reuse it.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	cfg := defaultSourceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	buf := slices.Clone(data)
	coll, err := sfnt.ParseCollection(buf)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	if cfg.index < 0 || cfg.index >= coll.NumFonts() {
		return nil, &CollectionIndexError{Index: cfg.index, Count: coll.NumFonts()}
	}
	f, err := coll.Font(cfg.index)
	if err != nil {
		return nil, fmt.Errorf("text: load face %d: %w", cfg.index, err)
	}

	s := &FontSource{
		data: buf,
		font: f,
	}
	s.addr = s
	s.name = extractFontName(f)
	return s, nil
}

// NewFontSourceFromFile reads and parses the font file at path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("text: read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

// Face creates a Face at the specified size. Sizes are in points and one
// point renders as one pixel.
//
// Face panics on a nil source.
func (s *FontSource) Face(size float64) *Face {
	if s == nil {
		panic("text: FontSource is nil; check the error from NewFontSourceFromFile")
	}
	s.copyCheck()
	return newFace(s, size)
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// NumGlyphs returns the number of glyphs in the font.
func (s *FontSource) NumGlyphs() int {
	s.copyCheck()
	return s.font.NumGlyphs()
}

// Close releases the font data. Faces created from this source return
// ErrClosed afterwards.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.data = nil
	return nil
}

// sfntFont returns the parsed font, or ErrClosed.
func (s *FontSource) sfntFont() (*sfnt.Font, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}
	return s.font, nil
}

func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName returns the family name, falling back to the full name.
func extractFontName(f *sfnt.Font) string {
	var buf sfnt.Buffer
	if name, err := f.Name(&buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(&buf, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "unnamed"
}
