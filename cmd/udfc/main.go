// Command udfc converts an installed font into a UDMF font archive.
package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/version"

	"github.com/gogpu/udfc"
	"github.com/gogpu/udfc/text"
)

const defaultWidth = 80

func init() {
	version.SetDefaultModule("github.com/gogpu/udfc")
}

type options struct {
	family     string
	style      string
	size       float64
	fontFiles  []string
	fontCache  string
	foreground string
	background string
	outline    string
	outlineW   int
	shadow     bool
	shadowCol  string
	shadowAng  int
	gradient   bool
	antialias  bool
	multiplier float64
	palette    string
	paletteDir string
	format     string
	output     string
	begin      int
	end        int
	coverage   []string
	preview    string
	previewOut string
	scale      int
	verbose    bool
}

func main() {
	var (
		o            options
		listFonts    bool
		listCoverage bool
		showPalette  bool
		showVersion  bool
	)

	def := udfc.DefaultRenderConfig()
	flags := pflag.NewFlagSet("udfc", pflag.ExitOnError)
	flags.StringVarP(&o.family, "font", "f", def.Font.Family, "Font family")
	flags.StringVar(&o.style, "style", def.Font.Style.String(), "Font style: regular|bold|italic|bold italic")
	flags.Float64VarP(&o.size, "size", "s", def.Font.Size, "Font size in pixels")
	flags.StringSliceVar(&o.fontFiles, "font-file", nil, "Font file to add to the installed fonts (\"builtin\" uses Go Regular)")
	flags.StringVar(&o.fontCache, "font-cache", "", "Directory for the installed font index (default: user cache)")
	flags.StringVar(&o.foreground, "fg", udfc.FormatColor(def.Foreground), "Foreground color (name or #rrggbb)")
	flags.StringVar(&o.background, "bg", udfc.FormatColor(def.Background), "Gradient bottom color")
	flags.StringVar(&o.outline, "outline-color", udfc.FormatColor(def.OutlineColor), "Outline color")
	flags.IntVar(&o.outlineW, "outline", def.OutlineWidth, "Outline width (0 disables)")
	flags.BoolVar(&o.shadow, "shadow", def.Shadow, "Draw a drop shadow")
	flags.StringVar(&o.shadowCol, "shadow-color", udfc.FormatColor(def.ShadowColor), "Shadow color")
	flags.IntVar(&o.shadowAng, "shadow-angle", def.ShadowAngle, "Shadow angle in degrees, 0 right, 90 down")
	flags.BoolVarP(&o.gradient, "gradient", "g", def.Gradient, "Fill with a vertical gradient from --fg to --bg")
	flags.BoolVarP(&o.antialias, "antialias", "a", def.Antialias, "Keep antialiased glyph edges")
	flags.Float64VarP(&o.multiplier, "multiplier", "m", def.Multiplier, "Glyph padding multiplier")
	flags.StringVarP(&o.palette, "palette", "p", "none", "Palette: "+strings.Join(udfc.PaletteNames(), "|")+" or a .pal file")
	flags.StringVar(&o.paletteDir, "palette-dir", ".", "Directory holding the game palette tables")
	flags.StringVarP(&o.format, "format", "t", "big", "Font format: console|small|big|bigupper")
	flags.StringVarP(&o.output, "output", "o", "font", "Output archive (.pk3 is appended when missing)")
	flags.IntVar(&o.begin, "begin", 32, "First character of the range")
	flags.IntVar(&o.end, "end", 127, "Last character of the range")
	flags.StringSliceVarP(&o.coverage, "coverage", "c", nil, "Named ranges to build instead of --begin/--end")
	flags.StringVar(&o.preview, "preview", "", "Render this text to --preview-out instead of building")
	flags.StringVar(&o.previewOut, "preview-out", "preview.png", "Preview image path")
	flags.IntVar(&o.scale, "preview-scale", 1, "Preview magnification")
	flags.BoolVar(&listFonts, "list-fonts", false, "List font families")
	flags.BoolVar(&listCoverage, "list-coverage", false, "List named character ranges")
	flags.BoolVar(&showPalette, "show-palette", false, "Print the color table of --palette")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Log every glyph")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: udfc [flags]\n")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if showVersion {
		fmt.Fprintln(os.Stdout, version.Module(), version.Current())
		return
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	udfc.SetLogger(logger)

	switch {
	case listCoverage:
		printCoverage()
		return
	case showPalette:
		if err := printPalette(o); err != nil {
			fmt.Fprintf(os.Stderr, "palette: %v\n", err)
			os.Exit(1)
		}
		return
	case listFonts:
		if err := printFonts(o, logger); err != nil {
			fmt.Fprintf(os.Stderr, "list fonts: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := renderConfig(o)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	face, closeFont, err := openFace(o, cfg.Font, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open font: %v\n", err)
		os.Exit(1)
	}
	defer closeFont()

	if o.preview != "" {
		if err := writePreview(face, cfg, o); err != nil {
			fmt.Fprintf(os.Stderr, "preview: %v\n", err)
			os.Exit(1)
		}
		return
	}

	format, err := udfc.ParseFontFormat(o.format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	sel, err := selection(o)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	res, err := build(ctx, face, cfg, format, sel, o.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, "%s: %s (%d of %d characters in %s)\n",
		res.Path, res.Outcome, res.Written, res.Total, res.Elapsed.Round(time.Millisecond))
	if res.Outcome == udfc.Terminated {
		os.Exit(130)
	}
}

// renderConfig turns the flags into a validated RenderConfig.
func renderConfig(o options) (udfc.RenderConfig, error) {
	cfg := udfc.DefaultRenderConfig()

	style, err := text.ParseStyle(o.style)
	if err != nil {
		return cfg, err
	}
	cfg.Font = text.Descriptor{Family: o.family, Style: style, Size: o.size}

	colors := []struct {
		flag string
		val  string
		dst  *color.NRGBA
	}{
		{"--fg", o.foreground, &cfg.Foreground},
		{"--bg", o.background, &cfg.Background},
		{"--outline-color", o.outline, &cfg.OutlineColor},
		{"--shadow-color", o.shadowCol, &cfg.ShadowColor},
	}
	for _, c := range colors {
		v, err := udfc.ParseColor(c.val)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", c.flag, c.val, err)
		}
		*c.dst = v
	}

	cfg.OutlineWidth = o.outlineW
	cfg.Shadow = o.shadow
	cfg.ShadowAngle = o.shadowAng
	cfg.Gradient = o.gradient
	cfg.Antialias = o.antialias
	cfg.Multiplier = o.multiplier

	store := udfc.NewPaletteStore(paletteFS(o.paletteDir))
	if cfg.Palette, err = store.Load(o.palette); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func paletteFS(dir string) fs.FS {
	if dir == "" {
		return nil
	}
	return os.DirFS(dir)
}

// selection builds the character selection from --coverage or
// --begin/--end.
func selection(o options) (udfc.Selection, error) {
	if len(o.coverage) == 0 {
		return udfc.RangeSelection(rune(o.begin), rune(o.end)), nil
	}
	var ranges []udfc.CharacterRange
	for _, name := range o.coverage {
		r, ok := udfc.CoverageByName(name)
		if !ok {
			return udfc.Selection{}, fmt.Errorf("unknown coverage %q (see --list-coverage)", name)
		}
		ranges = append(ranges, r)
	}
	return udfc.CoverageSelection(ranges...), nil
}

func printCoverage() {
	width := terminalWidth(defaultWidth)
	var items []string
	for _, name := range udfc.CoverageNames() {
		r, _ := udfc.CoverageByName(name)
		items = append(items, fmt.Sprintf("%s (%s)", name, r))
	}
	fmt.Fprintln(os.Stdout, wordwrap.String(strings.Join(items, ", "), width))
}

func printPalette(o options) error {
	p, err := udfc.NewPaletteStore(paletteFS(o.paletteDir)).Resolve(o.palette)
	if err != nil {
		return err
	}
	if p == nil {
		return errors.New("no palette selected, use --palette")
	}
	fmt.Fprintf(os.Stdout, "%s: %d colors\n", p.Name(), p.Len())
	for i, c := range p.Colors() {
		sep := " "
		if (i+1)%8 == 0 || i == p.Len()-1 {
			sep = "\n"
		}
		fmt.Fprintf(os.Stdout, "%3d %s%s", i, udfc.FormatColor(c), sep)
	}
	return nil
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}
