// Package udfc converts installed fonts into UDMF font archives for
// Doom source ports.
//
// # Overview
//
// A font archive is a zip file with the .pk3 extension. It holds one PNG
// image per character under filter/doom.id/fonts/<format>/, named after
// the code point in four upper-case hex digits (0041.png for "A"). The
// format directory selects which in-game font the images replace:
// consolefont, defsmallfont, bigfont or bigupper.
//
// # Quick Start
//
//	lib, err := text.NewLibrary()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer lib.Close()
//
//	face, err := lib.Open(text.Descriptor{Family: "DejaVu Sans", Size: 16})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg := udfc.DefaultRenderConfig()
//	cfg.OutlineWidth = 1
//	res, err := udfc.RunJob(ctx, udfc.Job{
//	    Source:    face,
//	    Config:    cfg,
//	    Format:    udfc.BigFont,
//	    Output:    "myfont",
//	    Selection: udfc.DefaultSelection(),
//	}, nil)
//
// # Rendering
//
// Render draws one character into a Raster sized from the glyph box plus
// the padding the effects need. Effects are applied in a fixed order:
//
//  1. The glyph body, in the foreground color or a vertical gradient.
//  2. The outline, painted around the body on transparent pixels.
//  3. The drop shadow, painted only on pixels still transparent.
//
// With a Palette set in the RenderConfig the raster is quantized and
// encoded as an indexed PNG; entry 0 of every palette is transparent.
//
// # Jobs
//
// RunJob builds an archive synchronously. Controller runs jobs on a single
// worker goroutine with Start, Stop and Progress, and rejects configuration
// changes while a job is running.
//
// # Logging
//
// The package is silent by default. Call SetLogger with a *slog.Logger to
// see job and palette events.
package udfc
