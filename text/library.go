package text

import (
	"cmp"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
)

// FontInfo describes one face known to a Library.
type FontInfo struct {
	// Family is the family name as reported by the index. System fonts
	// carry the normalized name (lower case, no spaces).
	Family string

	// Style is derived from the face weight and slant.
	Style Style

	// Path is the font file.
	Path string

	// Index is the face index inside a collection file.
	Index int

	key string
}

type sourceKey struct {
	path  string
	index int
}

// Library indexes the fonts available to the converter and opens faces
// by family and style.
//
// Library is safe for concurrent use.
type Library struct {
	logger *slog.Logger

	mu      sync.Mutex
	fonts   []FontInfo
	sources map[sourceKey]*FontSource
}

// NewLibrary builds a library from the installed system fonts and any
// files passed with WithFontFiles. The system index is cached on disk by
// fontscan, so only the first run in a cache directory is slow.
func NewLibrary(opts ...LibraryOption) (*Library, error) {
	cfg := defaultLibraryConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	l := &Library{
		logger:  cfg.logger,
		sources: make(map[sourceKey]*FontSource),
	}

	if cfg.system {
		fps, err := fontscan.SystemFonts(scanLogger{cfg.logger}, cfg.cacheDir)
		if err != nil {
			return nil, fmt.Errorf("text: scan system fonts: %w", err)
		}
		for _, fp := range fps {
			// Named instances of variable fonts cannot be selected
			// through sfnt; keep the default instance only.
			if fp.Location.Instance != 0 {
				continue
			}
			l.fonts = append(l.fonts, FontInfo{
				Family: fp.Family,
				Style:  styleFromAspect(fp.Aspect),
				Path:   fp.Location.File,
				Index:  int(fp.Location.Index),
				key:    fp.Family,
			})
		}
		cfg.logger.Debug("system fonts indexed", "faces", len(l.fonts))
	}

	for _, path := range cfg.fontFiles {
		if err := l.AddFile(path); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// AddFile adds every face of a font file (or collection) to the library.
func (l *Library) AddFile(path string) error {
	// #nosec G304 -- Font file path is provided by the user
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("text: open font file: %w", err)
	}
	defer f.Close()

	faces, err := font.ParseTTC(f)
	if err != nil {
		return fmt.Errorf("text: parse %s: %w", path, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for i, face := range faces {
		d := face.Describe()
		info := FontInfo{
			Family: d.Family,
			Style:  styleFromAspect(d.Aspect),
			Path:   path,
			Index:  i,
			key:    font.NormalizeFamily(d.Family),
		}
		// User files take priority over installed faces of the same name.
		l.fonts = slices.Insert(l.fonts, 0, info)
		l.logger.Debug("font file added", "path", path, "family", d.Family, "style", info.Style)
	}
	return nil
}

// Fonts returns every indexed face, sorted by family then style.
func (l *Library) Fonts() []FontInfo {
	l.mu.Lock()
	out := slices.Clone(l.fonts)
	l.mu.Unlock()

	slices.SortStableFunc(out, func(a, b FontInfo) int {
		if c := cmp.Compare(a.key, b.key); c != 0 {
			return c
		}
		return cmp.Compare(a.Style, b.Style)
	})
	return out
}

// Families returns the sorted, deduplicated family names.
func (l *Library) Families() []string {
	fonts := l.Fonts()
	seen := make(map[string]bool, len(fonts))
	var out []string
	for _, fi := range fonts {
		if seen[fi.key] {
			continue
		}
		seen[fi.key] = true
		out = append(out, fi.Family)
	}
	return out
}

// Find returns the face that best matches desc. An exact style match wins;
// otherwise the regular face of the family is used, then any face of it.
// Returns ErrFontNotFound when the family is unknown.
func (l *Library) Find(desc Descriptor) (FontInfo, error) {
	key := font.NormalizeFamily(desc.Family)

	l.mu.Lock()
	defer l.mu.Unlock()

	var regular, first *FontInfo
	for i := range l.fonts {
		fi := &l.fonts[i]
		if fi.key != key {
			continue
		}
		if fi.Style == desc.Style {
			return *fi, nil
		}
		if regular == nil && fi.Style == StyleRegular {
			regular = fi
		}
		if first == nil {
			first = fi
		}
	}
	switch {
	case regular != nil:
		l.logger.Debug("style not available, using regular", "family", desc.Family, "style", desc.Style)
		return *regular, nil
	case first != nil:
		l.logger.Debug("style not available, using first face", "family", desc.Family, "style", first.Style)
		return *first, nil
	}
	return FontInfo{}, fmt.Errorf("%w: %q", ErrFontNotFound, desc.Family)
}

// Open finds the face matching desc and returns it at desc.Size.
// Font files are parsed once and shared between faces.
func (l *Library) Open(desc Descriptor) (*Face, error) {
	fi, err := l.Find(desc)
	if err != nil {
		return nil, err
	}

	k := sourceKey{path: fi.Path, index: fi.Index}
	l.mu.Lock()
	src, ok := l.sources[k]
	l.mu.Unlock()
	if !ok {
		src, err = NewFontSourceFromFile(fi.Path, WithCollectionIndex(fi.Index))
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		if prev, raced := l.sources[k]; raced {
			src = prev
		} else {
			l.sources[k] = src
		}
		l.mu.Unlock()
	}
	return src.Face(desc.Size), nil
}

// Close releases every font source opened by the library.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for k, src := range l.sources {
		_ = src.Close()
		delete(l.sources, k)
	}
	return nil
}

func styleFromAspect(a font.Aspect) Style {
	bold := a.Weight >= font.WeightSemibold
	italic := a.Style == font.StyleItalic
	switch {
	case bold && italic:
		return StyleBoldItalic
	case bold:
		return StyleBold
	case italic:
		return StyleItalic
	}
	return StyleRegular
}

// scanLogger forwards fontscan diagnostics to slog.
type scanLogger struct {
	l *slog.Logger
}

func (s scanLogger) Printf(format string, args ...any) {
	s.l.Debug(fmt.Sprintf(format, args...), "component", "fontscan")
}
