package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/runenames"

	"github.com/gogpu/udfc"
	"github.com/gogpu/udfc/text"
)

// builtinFont is the --font-file value selecting the embedded Go Regular.
const builtinFont = "builtin"

func libraryOptions(o options, logger *slog.Logger) []text.LibraryOption {
	opts := []text.LibraryOption{text.WithLogger(logger), text.WithCacheDir(o.fontCache)}
	for _, f := range o.fontFiles {
		if f != builtinFont {
			opts = append(opts, text.WithFontFiles(f))
		}
	}
	return opts
}

// openFace opens the face described by desc. With --font-file builtin and
// no other font file the embedded Go Regular is used. When the family is
// not installed and a font file was given, the first face of that file is
// used.
func openFace(o options, desc text.Descriptor, logger *slog.Logger) (*text.Face, func(), error) {
	if slices.Equal(o.fontFiles, []string{builtinFont}) {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using builtin font", "family", src.Name(), "size", desc.Size)
		return src.Face(desc.Size), func() { _ = src.Close() }, nil
	}

	lib, err := text.NewLibrary(libraryOptions(o, logger)...)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = lib.Close() }

	face, err := lib.Open(desc)
	if errors.Is(err, text.ErrFontNotFound) && len(o.fontFiles) > 0 {
		for _, fi := range lib.Fonts() {
			if fi.Path == o.fontFiles[0] {
				logger.Warn("family not found, using font file", "family", desc.Family, "file", fi.Path, "found", fi.Family)
				desc.Family = fi.Family
				face, err = lib.Open(desc)
				break
			}
		}
	}
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return face, cleanup, nil
}

func printFonts(o options, logger *slog.Logger) error {
	lib, err := text.NewLibrary(libraryOptions(o, logger)...)
	if err != nil {
		return err
	}
	defer lib.Close()

	fonts := lib.Fonts()
	for _, family := range lib.Families() {
		var styles []string
		for _, fi := range fonts {
			if fi.Family == family && !slices.Contains(styles, fi.Style.String()) {
				styles = append(styles, fi.Style.String())
			}
		}
		fmt.Fprintf(os.Stdout, "%s: %s\n", family, strings.Join(styles, ", "))
	}
	return nil
}

// writePreview renders o.preview and saves it as a PNG. The characters
// are listed by name on stdout.
func writePreview(face *text.Face, cfg udfc.RenderConfig, o options) error {
	r, err := udfc.Preview(face, o.preview, cfg)
	if err != nil {
		return err
	}
	img := udfc.ScaleImage(r.Image(), o.scale)

	if err := udfc.SavePNG(o.previewOut, img); err != nil {
		return err
	}

	for _, c := range norm.NFC.String(o.preview) {
		fmt.Fprintf(os.Stdout, "%U %s\n", c, runenames.Name(c))
	}
	fmt.Fprintf(os.Stdout, "%s: %dx%d\n", o.previewOut, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}
