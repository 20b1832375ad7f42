package udfc

import (
	"errors"
	"fmt"
)

// Sentinel errors for udfc.
var (
	// ErrEmptyInput is returned by Preview when the text has no characters.
	ErrEmptyInput = errors.New("udfc: empty preview text")

	// ErrBusy is returned when a request needs the controller idle.
	ErrBusy = errors.New("udfc: a job is already running")

	// ErrPaletteSize is returned for palette tables that are not 768 bytes
	// or color lists outside 1..256 entries.
	ErrPaletteSize = errors.New("udfc: invalid palette size")

	// ErrUnknownPalette is returned when a palette name cannot be resolved.
	ErrUnknownPalette = errors.New("udfc: unknown palette")

	// ErrNoGlyphSource is returned when a job starts before Configure.
	ErrNoGlyphSource = errors.New("udfc: no glyph source configured")
)

// ConfigError reports an invalid configuration value. It is returned
// before any output file is touched.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("udfc: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}
