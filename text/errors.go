package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrFontNotFound is returned when no installed font matches a descriptor.
	ErrFontNotFound = errors.New("text: font not found")

	// ErrClosed is returned when a Face is used after its FontSource was closed.
	ErrClosed = errors.New("text: font source closed")
)

// CollectionIndexError is returned when a collection index is out of range.
type CollectionIndexError struct {
	Index int
	Count int
}

func (e *CollectionIndexError) Error() string {
	return fmt.Sprintf("text: collection index %d out of range [0, %d)", e.Index, e.Count)
}
