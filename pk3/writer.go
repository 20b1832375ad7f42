package pk3

import (
	"archive/zip"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Extension is the file extension of font archives.
const Extension = ".pk3"

// Root is the directory all engine fonts live under.
const Root = "filter/doom.id/fonts"

var (
	// ErrClosed is returned when writing to a closed archive.
	ErrClosed = errors.New("pk3: archive closed")

	// ErrNoFontDir is returned by Create for an empty font directory.
	ErrNoFontDir = errors.New("pk3: empty font directory")
)

// NormalizePath appends Extension unless path already ends with it
// (in any case).
func NormalizePath(path string) string {
	if strings.EqualFold(filepath.Ext(path), Extension) {
		return path
	}
	return path + Extension
}

// EntryName returns the file name of the glyph for r: its code point as
// four upper case hex digits plus ".png".
func EntryName(r rune) string {
	return fmt.Sprintf("%04X.png", r)
}

// Skeleton returns the directory entries written before any glyph, from
// the outermost to the font directory.
func Skeleton(fontDir string) []string {
	return []string{
		"filter/",
		"filter/doom.id/",
		"filter/doom.id/fonts/",
		Root + "/" + fontDir + "/",
	}
}

// Writer appends glyph images to a font archive.
type Writer struct {
	path    string
	prefix  string
	f       *os.File
	zw      *zip.Writer
	entries []string
	closed  bool
}

// Create starts a new archive at path (with Extension appended if
// missing) for the font directory fontDir. An existing file at that path
// is removed first. The directory skeleton is written before Create
// returns.
func Create(path, fontDir string) (*Writer, error) {
	if fontDir == "" {
		return nil, ErrNoFontDir
	}
	path = NormalizePath(path)
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("pk3: remove existing archive: %w", err)
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("pk3: create archive: %w", err)
	}

	w := &Writer{
		path:   path,
		prefix: Root + "/" + fontDir + "/",
		f:      f,
		zw:     zip.NewWriter(f),
	}
	for _, dir := range Skeleton(fontDir) {
		if _, err := w.zw.Create(dir); err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("pk3: write %s: %w", dir, err)
		}
		w.entries = append(w.entries, dir)
	}
	return w, nil
}

// Path returns the archive file path.
func (w *Writer) Path() string { return w.path }

// Prefix returns the directory glyph entries are written to, with a
// trailing slash.
func (w *Writer) Prefix() string { return w.prefix }

// Entries returns the names written so far, directories included.
func (w *Writer) Entries() []string {
	out := make([]string, len(w.entries))
	copy(out, w.entries)
	return out
}

// WritePNG encodes img as PNG and stores it as the glyph entry for r.
func (w *Writer) WritePNG(r rune, img image.Image) error {
	if w.closed {
		return ErrClosed
	}
	name := w.prefix + EntryName(r)
	fw, err := w.zw.Create(name)
	if err != nil {
		return fmt.Errorf("pk3: create %s: %w", name, err)
	}
	if err := png.Encode(fw, img); err != nil {
		return fmt.Errorf("pk3: encode %s: %w", name, err)
	}
	w.entries = append(w.entries, name)
	return nil
}

// Close finishes the archive and closes the file. The file is closed even
// when finishing the zip directory fails. Close is idempotent.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	zerr := w.zw.Close()
	ferr := w.f.Close()
	if zerr != nil {
		return fmt.Errorf("pk3: finish archive: %w", zerr)
	}
	if ferr != nil {
		return fmt.Errorf("pk3: close archive: %w", ferr)
	}
	return nil
}
