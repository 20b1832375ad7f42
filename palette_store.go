package udfc

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync/atomic"
)

// namedPaletteFiles maps game palette names to their table files.
var namedPaletteFiles = map[string]string{
	"doom":    "DoomPalette.pal",
	"heretic": "HereticPalette.pal",
	"hexen":   "HexenPalette.pal",
}

// PaletteNames lists the names Resolve understands besides file paths.
func PaletteNames() []string {
	return []string{"doom", "heretic", "hexen", "6bit", "8bit", "none"}
}

// PaletteStore holds the active palette. Loads replace it atomically, so
// a running job keeps the palette it started with.
type PaletteStore struct {
	dir     fs.FS
	current atomic.Pointer[Palette]
}

// NewPaletteStore creates an empty store. dir holds the game palette
// tables (DoomPalette.pal and friends) and may be nil.
func NewPaletteStore(dir fs.FS) *PaletteStore {
	return &PaletteStore{dir: dir}
}

// Resolve builds the palette called name without activating it.
// Names are case-insensitive; "6-bit RGB" and "6bit" are the same.
// "none" resolves to a nil palette. Any other name is read as a file path.
func (s *PaletteStore) Resolve(name string) (*Palette, error) {
	key := strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(name))
	switch key {
	case "", "none":
		return nil, nil
	case "6bit", "6bitrgb":
		return RGBCube6(), nil
	case "8bit", "8bitrgb":
		return RGBCube8(), nil
	}

	if file, ok := namedPaletteFiles[key]; ok {
		if s.dir == nil {
			return nil, fmt.Errorf("%w: %s (no palette directory)", ErrUnknownPalette, name)
		}
		f, err := s.dir.Open(file)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrUnknownPalette, name, err)
		}
		defer f.Close()
		return ReadPalette(key, f)
	}

	p, err := LoadPaletteFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPalette, name)
	}
	return p, err
}

// Load resolves name and makes it the active palette.
// Loading "none" is the same as Reset.
func (s *PaletteStore) Load(name string) (*Palette, error) {
	p, err := s.Resolve(name)
	if err != nil {
		return nil, err
	}
	s.current.Store(p)
	if p == nil {
		Logger().Info("palette reset")
	} else {
		Logger().Info("palette loaded", "name", p.Name(), "colors", p.Len())
	}
	return p, nil
}

// Set makes p the active palette. A nil p disables quantization.
func (s *PaletteStore) Set(p *Palette) { s.current.Store(p) }

// Current returns the active palette, or nil when none is loaded.
func (s *PaletteStore) Current() *Palette { return s.current.Load() }

// Reset clears the active palette.
func (s *PaletteStore) Reset() { s.current.Store(nil) }
